package instance

import (
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/dualsimplex/model"
)

type constraint struct {
	row  []float64
	rhs  float64
	flip bool
}

// ReadMPS reads a free MPS file and returns it in the form
// max c'x s.t. Ax <= b with x free.
//
// A "<= u" row is kept, a ">= l" row is negated, ranged and fixed rows give
// both and free rows are dropped. Finite column bounds become rows. A
// minimization objective is negated and recorded in Problem.Minimize.
func (r *Reader) ReadMPS() (*model.Problem, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.path); err != nil {
		return nil, errors.Wrapf(err, "read mps %s", r.path)
	}

	numCols := lp.NumCols()
	if numCols == 0 {
		return nil, errors.Errorf("%s: no columns", r.path)
	}
	minimize := lp.ObjDir() == glpk.MIN

	//populate obj function
	cVec := make([]float64, numCols)
	for c := 0; c < numCols; c++ {
		cVec[c] = lp.ObjCoef(c + 1)
		if minimize {
			cVec[c] = -cVec[c]
		}
	}

	//populate constraints
	var cons []constraint
	for i := 1; i <= lp.NumRows(); i++ {
		rowVec := make([]float64, numCols)
		idxs, row := lp.MatRow(i)
		for k, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = row[k]
		}
		cons = append(cons, bounded(rowVec, lp.RowType(i), lp.RowLB(i), lp.RowUB(i))...)
	}

	for c := 0; c < numCols; c++ {
		rowVec := make([]float64, numCols)
		rowVec[c] = 1
		cons = append(cons, bounded(rowVec, lp.ColType(c+1), lp.ColLB(c+1), lp.ColUB(c+1))...)
	}
	if len(cons) == 0 {
		return nil, errors.Errorf("%s: no constraints", r.path)
	}

	aVec := make([]float64, 0, len(cons)*numCols)
	bVec := make([]float64, 0, len(cons))
	for _, k := range cons {
		aVec = append(aVec, k.row...)
		bVec = append(bVec, k.rhs)
	}
	p := model.NewProblem(
		mat.NewDense(len(cons), numCols, aVec),
		mat.NewDense(len(cons), 1, bVec),
		mat.NewDense(numCols, 1, cVec),
	)
	p.Minimize = minimize

	//lower bounds l <= a'x become -a'x <= -l
	for i, k := range cons {
		if k.flip {
			if err := p.MultiplyConstraint(i, -1); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// bounded returns the "<=" constraints of lb <= a'x <= ub for the bound type.
func bounded(a []float64, typ glpk.BndsType, lb, ub float64) []constraint {
	upper := constraint{row: a, rhs: ub}
	lower := constraint{row: append([]float64(nil), a...), rhs: lb, flip: true}
	switch typ {
	case glpk.UP:
		return []constraint{upper}
	case glpk.LO:
		return []constraint{lower}
	case glpk.DB, glpk.FX:
		return []constraint{upper, lower}
	}
	return nil
}
