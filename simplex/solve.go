package simplex

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"q.log/dualsimplex/model"
)

var ErrRepairExhausted = errors.New("simplex: not enough zero-valued rows to repair degenerate basis")

// Solve solves min b'y s.t. y'A = c, y >= 0 and, when it has a solution,
// max c'x s.t. Ax <= b. The inputs are copied.
func Solve(a, b, c mat.Matrix, opts ...Option) Outcome {
	s, err := New(opts...)
	if err != nil {
		return Invalid{Reason: err.Error()}
	}
	return s.Solve(model.NewProblem(a, b, c))
}

// Solve runs phase I on the auxiliary problem of p, repairs the basis it
// ends with and runs the method on p from there.
func (s *Solver) Solve(p *model.Problem) Outcome {
	if err := p.ValidateSolvable(); err != nil {
		return Invalid{Reason: err.Error()}
	}

	aux, start, err := Auxiliary(p)
	if err != nil {
		return Invalid{Reason: err.Error()}
	}
	s.logf("simplex: phase I, %d rows, %d columns", aux.Eqs(), aux.Vars())

	var phaseOne Optimal
	switch out := s.Simplex(aux, start).(type) {
	case Optimal:
		phaseOne = out
	case Invalid:
		return out
	default:
		panic(fmt.Sprintf("simplex: auxiliary problem is %v", out.Status()))
	}

	if math.Abs(phaseOne.Value) > s.tol {
		s.logf("simplex: phase I value %v, infeasible", phaseOne.Value)
		return Infeasible{}
	}

	basis, err := RepairBasis(p.Eqs(), phaseOne.Y, phaseOne.Basis, s.tol)
	if err != nil {
		return Invalid{Reason: err.Error()}
	}
	s.logf("simplex: phase II from basis %v", []int(basis))

	return s.Simplex(p, basis)
}

// RepairBasis replaces every slack row (index >= eqs) of basis by an original
// row that is not basic and whose dual value is zero within tol. Candidates
// are taken from the highest index down. basis is not modified.
func RepairBasis(eqs int, y mat.Matrix, basis Basis, tol float64) (Basis, error) {
	var pool []int
	for i := 0; i < eqs; i++ {
		if math.Abs(y.At(i, 0)) <= tol && !basis.Contains(i) {
			pool = append(pool, i)
		}
	}

	repaired := append(Basis(nil), basis...)
	for i, row := range repaired {
		if row < eqs {
			continue
		}
		if len(pool) == 0 {
			return nil, ErrRepairExhausted
		}
		repaired[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return repaired, nil
}
