package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Status tags the terminal state of a solve.
type Status int

const (
	StatusInvalid Status = iota
	StatusOptimal
	StatusUnbounded
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusInfeasible:
		return "infeasible"
	case StatusInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is one of Optimal, Unbounded, Infeasible or Invalid. The set is
// closed: only this package can implement it.
type Outcome interface {
	Status() Status
	String() string
	outcome()
}

// Optimal holds an optimal pair of solutions, Value = y'b = c'x.
type Optimal struct {
	Value float64
	// Y is the dual solution, eqs x 1.
	Y *mat.Dense
	// X is the primal solution, vars x 1.
	X     *mat.Dense
	Basis Basis
}

// Unbounded means the dual objective has no finite minimum.
type Unbounded struct{}

// Infeasible means y'A = c, y >= 0 has no solution.
type Infeasible struct{}

// Invalid reports a malformed input or a numerical failure such as a
// singular basis matrix.
type Invalid struct {
	Reason string
}

func (Optimal) outcome()    {}
func (Unbounded) outcome()  {}
func (Infeasible) outcome() {}
func (Invalid) outcome()    {}

func (Optimal) Status() Status    { return StatusOptimal }
func (Unbounded) Status() Status  { return StatusUnbounded }
func (Infeasible) Status() Status { return StatusInfeasible }
func (Invalid) Status() Status    { return StatusInvalid }

func (o Optimal) String() string {
	y := mat.Formatted(o.Y.T(), mat.Squeeze())
	x := mat.Formatted(o.X.T(), mat.Squeeze())
	return fmt.Sprintf("Optimal solution found:\n\nValue: %v\n\ny' = %v\nx' = %v\nB = %v\n", o.Value, y, x, []int(o.Basis))
}

func (Unbounded) String() string { return "Unbounded solution found" }

func (Infeasible) String() string { return "The problem has no feasible solution" }

func (i Invalid) String() string { return "Error: " + i.Reason }

func (i Invalid) Error() string { return i.Reason }

func invalid(format string, args ...interface{}) Invalid {
	return Invalid{Reason: fmt.Sprintf(format, args...)}
}
