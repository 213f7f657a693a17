package instance

import (
	"path/filepath"

	"q.log/dualsimplex/model"
)

// File names looked up by ReadDir.
const (
	AFile = "A.txt"
	BFile = "b.txt"
	CFile = "c.txt"
)

// Reader reads problem files to construct a model
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{
		path: path,
	}
}

// ReadDir reads A, b and c from the files AFile, BFile and CFile of the
// reader's directory. Shapes are left to the solver to check.
func (r *Reader) ReadDir() (*model.Problem, error) {
	a, err := ReadMatrix(filepath.Join(r.path, AFile))
	if err != nil {
		return nil, err
	}
	b, err := ReadMatrix(filepath.Join(r.path, BFile))
	if err != nil {
		return nil, err
	}
	c, err := ReadMatrix(filepath.Join(r.path, CFile))
	if err != nil {
		return nil, err
	}
	return model.NewProblem(a, b, c), nil
}
