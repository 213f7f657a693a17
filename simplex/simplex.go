package simplex

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"q.log/dualsimplex/model"
)

// Solver runs the dual simplex method. The zero value is not usable, see New.
type Solver struct {
	logger Logger
	tol    float64
}

// New returns a Solver configured by opts.
func New(opts ...Option) (*Solver, error) {
	s := &Solver{logger: noopLogger{}}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Solver) logf(format string, args ...interface{}) {
	s.logger.Print(fmt.Sprintf(format, args...))
}

// Simplex pivots from the dual-admissible basis until a terminal outcome is
// reached. basis is not modified. Revisiting a basis, which only rounding
// can cause under Bland's rule, ends the method with Invalid.
func (s *Solver) Simplex(p *model.Problem, basis Basis) Outcome {
	current := basis
	visited := map[string]bool{}
	for iter := 1; ; iter++ {
		key := current.key()
		if visited[key] {
			s.logf("simplex: basis %v revisited after %d step(s)", []int(current), iter-1)
			return invalid("pivoting cycled")
		}
		visited[key] = true

		out, next := s.Pivot(p, current)
		if out != nil {
			s.logf("simplex: %v after %d step(s)", out.Status(), iter)
			return out
		}
		s.logf("simplex: step %d basis %v -> %v", iter, []int(current), []int(next))
		current = next
	}
}

// Pivot performs one step of the method from basis. It returns either a
// terminal outcome or, with a nil outcome, the next basis.
func (s *Solver) Pivot(p *model.Problem, basis Basis) (Outcome, Basis) {
	if err := p.Validate(); err != nil {
		return Invalid{Reason: err.Error()}, nil
	}
	eqs, vars := p.Eqs(), p.Vars()
	if err := basis.validate(eqs, vars); err != nil {
		return Invalid{Reason: err.Error()}, nil
	}
	nonbasis := basis.Nonbasis(eqs)

	ab := model.SelectRows(p.A, basis)
	bB := model.SelectRows(p.B, basis)

	//W = -Ab^-1
	var w mat.Dense
	if err := w.Inverse(ab); singular(err) {
		return invalid("basis matrix not invertible"), nil
	}
	w.Scale(-1, &w)

	//y over the basic rows is -c'W, zero elsewhere
	var cw mat.Dense
	cw.Mul(p.C.T(), &w)
	y := mat.NewDense(eqs, 1, nil)
	for i, row := range basis {
		y.Set(row, 0, -cw.At(0, i))
	}
	for i := 0; i < eqs; i++ {
		if y.At(i, 0) < -s.tol {
			return invalid("basis not dual-admissible"), nil
		}
	}

	v := mat.Dot(y.ColView(0), p.B.ColView(0))
	x := mat.NewDense(vars, 1, nil)
	x.Mul(&w, bB)
	x.Scale(-1, x)

	//entering row: lowest nonbasic index with bN - An*x < 0
	entering := -1
	for _, row := range nonbasis {
		d := p.B.At(row, 0) - mat.Dot(p.A.RowView(row), x.ColView(0))
		if d < -s.tol {
			entering = row
			break
		}
	}
	if entering == -1 {
		return Optimal{Value: v, Y: y, X: x, Basis: append(Basis(nil), basis...)}, nil
	}

	//minimal ratio test, the first minimizer leaves
	leaving := -1
	minRatio := math.Inf(1)
	for i, row := range basis {
		prod := mat.Dot(p.A.RowView(entering), w.ColView(i))
		if prod >= -s.tol {
			continue
		}
		if r := -y.At(row, 0) / prod; r < minRatio {
			minRatio = r
			leaving = i
		}
	}
	if leaving == -1 {
		return Unbounded{}, nil
	}

	s.logf("simplex: value %v, row %d enters, row %d leaves", v, entering, basis[leaving])
	return nil, basis.Replace(leaving, entering)
}

// singular reports whether err from Dense.Inverse means no inverse was
// computed. An ill-conditioned matrix still has a usable inverse.
func singular(err error) bool {
	if err == nil {
		return false
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		return math.IsInf(float64(cond), 1)
	}
	return true
}
