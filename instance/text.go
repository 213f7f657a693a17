package instance

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ReadMatrix reads a dense matrix from a text file holding one row per line
// with entries separated by commas, e.g. "1,2,3\n4,5,6\n".
func ReadMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	m, err := ParseMatrix(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return m, nil
}

// ParseMatrix parses the format of ReadMatrix. Blank lines are skipped and
// blanks around entries are ignored. Every row must have the same length.
func ParseMatrix(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var data []float64
	rows, cols := 0, 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "parse matrix")
		}
		line, _ := cr.FieldPos(0)
		if rows == 0 {
			cols = len(record)
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Errorf("line %d, entry %d: invalid number %q", line, j+1, field)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, errors.New("empty matrix")
	}
	return mat.NewDense(rows, cols, data), nil
}
