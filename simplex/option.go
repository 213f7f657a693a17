package simplex

import (
	"errors"
	"math"
)

type Option func(*Solver) error

func WithLogger(logger Logger) Option {
	return func(s *Solver) error {
		if logger == nil {
			return errors.New("simplex: nil logger")
		}
		s.logger = logger

		return nil
	}
}

// WithTolerance widens every sign test of the solver by eps: a dual entry
// counts as negative below -eps, a residual selects an entering row below
// -eps, a ratio candidate needs a product below -eps, a phase I value above
// eps in magnitude means infeasible and a dual entry within eps of zero may
// replace a slack row. The default is 0.
func WithTolerance(eps float64) Option {
	return func(s *Solver) error {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			return errors.New("simplex: tolerance must be a finite non-negative number")
		}
		s.tol = eps

		return nil
	}
}
