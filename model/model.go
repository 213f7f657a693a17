package model

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNilMatrix  = errors.New("model: nil matrix")
	ErrNotColumn  = errors.New("model: not a single column")
	ErrShape      = errors.New("model: size mismatch")
	ErrNotFinite  = errors.New("model: entry is NaN or infinite")
	ErrTooFewRows = errors.New("model: fewer constraints than variables")
	ErrNoRow      = errors.New("model: row does not exist")
	ErrNoCol      = errors.New("model: column does not exist")
)

// Problem is the pair of linear programs
//
//	min b'y  s.t.  y'A = c, y >= 0
//	max c'x  s.t.  Ax <= b
//
// Rows of A are dual variables (primal constraints), columns of A are primal
// variables (dual constraints).
type Problem struct {
	//A constraints matrix, eqs x vars
	A *mat.Dense

	//B constraints rhs, eqs x 1
	B *mat.Dense

	//C primal objective coefficients, vars x 1
	C *mat.Dense

	// Minimize is set when the problem was read from a minimization model
	// and C holds the negated objective.
	Minimize bool
}

// NewProblem copies a, b and c into a new Problem. Shapes are not checked,
// see Validate.
func NewProblem(a, b, c mat.Matrix) *Problem {
	return &Problem{
		A: copyOf(a),
		B: copyOf(b),
		C: copyOf(c),
	}
}

func copyOf(m mat.Matrix) *mat.Dense {
	if m == nil {
		return nil
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return nil
	}
	return mat.DenseCopyOf(m)
}

// Clone returns a deep copy of p.
func (p *Problem) Clone() *Problem {
	return &Problem{
		A:        copyOf(p.A),
		B:        copyOf(p.B),
		C:        copyOf(p.C),
		Minimize: p.Minimize,
	}
}

// Eqs returns the number of rows of A.
func (p *Problem) Eqs() int {
	r, _ := p.A.Dims()
	return r
}

// Vars returns the number of columns of A.
func (p *Problem) Vars() int {
	_, c := p.A.Dims()
	return c
}

// Validate checks that b and c are single columns whose lengths agree with A
// and that every entry is finite.
func (p *Problem) Validate() error {
	if p.A == nil || p.B == nil || p.C == nil {
		return ErrNilMatrix
	}
	ar, ac := p.A.Dims()
	br, bc := p.B.Dims()
	cr, cc := p.C.Dims()
	if bc != 1 {
		return fmt.Errorf("b has %d columns: %w", bc, ErrNotColumn)
	}
	if cc != 1 {
		return fmt.Errorf("c has %d columns: %w", cc, ErrNotColumn)
	}
	if ar != br {
		return fmt.Errorf("A has %d rows, b has %d: %w", ar, br, ErrShape)
	}
	if ac != cr {
		return fmt.Errorf("A has %d columns, c has %d rows: %w", ac, cr, ErrShape)
	}
	for _, m := range p.named() {
		if !finite(m.m) {
			return fmt.Errorf("%s: %w", m.name, ErrNotFinite)
		}
	}
	return nil
}

// ValidateSolvable is Validate plus the requirement that a basis of Vars
// distinct rows can be drawn from the Eqs rows of A.
func (p *Problem) ValidateSolvable() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Eqs() < p.Vars() {
		return fmt.Errorf("%d rows, %d columns: %w", p.Eqs(), p.Vars(), ErrTooFewRows)
	}
	return nil
}

func finite(m *mat.Dense) bool {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}
	if floats.HasNaN(data) {
		return false
	}
	return !math.IsInf(floats.Max(data), 1) && !math.IsInf(floats.Min(data), -1)
}

// SelectRows returns a new matrix holding the rows of m named by indices, in
// that order. indices must be non-empty and every index a row of m.
func SelectRows(m mat.Matrix, indices []int) *mat.Dense {
	_, c := m.Dims()
	res := mat.NewDense(len(indices), c, nil)
	for i, idx := range indices {
		res.SetRow(i, mat.Row(nil, idx, m))
	}
	return res
}

// SetB replaces the constraints rhs.
func (p *Problem) SetB(bVec []float64) error {
	if len(bVec) != p.Eqs() {
		return errors.New("mismatch number of constraints")
	}

	p.B = mat.NewDense(p.Eqs(), 1, bVec)

	return nil
}

// AddRow appends the constraint rVec * x <= rhs.
func (p *Problem) AddRow(rVec []float64, rhs float64) error {
	if len(rVec) != p.Vars() {
		return errors.New("mismatch number of columns, i.e. wrong len of rVec")
	}
	numRows := p.Eqs()

	p.A = mat.DenseCopyOf(p.A.Grow(1, 0))
	p.A.SetRow(numRows, rVec)

	p.B = mat.DenseCopyOf(p.B.Grow(1, 0))
	p.B.Set(numRows, 0, rhs)

	return nil
}

// ScaleCol multiplies column col of A and entry col of c by mul.
func (p *Problem) ScaleCol(col int, mul float64) error {
	if col < 0 || col >= p.Vars() {
		return ErrNoCol
	}

	for row := 0; row < p.Eqs(); row++ {
		p.A.Set(row, col, p.A.At(row, col)*mul)
	}
	p.C.Set(col, 0, p.C.At(col, 0)*mul)
	return nil
}

// MultiplyConstraint multiplies row of A and its rhs by mul.
func (p *Problem) MultiplyConstraint(row int, mul float64) error {
	if row < 0 || row >= p.Eqs() {
		return ErrNoRow
	}

	for col := 0; col < p.Vars(); col++ {
		p.A.Set(row, col, p.A.At(row, col)*mul)
	}
	p.B.Set(row, 0, p.B.At(row, 0)*mul)
	return nil
}

type namedMatrix struct {
	name string
	m    *mat.Dense
}

func (p *Problem) named() []namedMatrix {
	return []namedMatrix{{"A", p.A}, {"b", p.B}, {"c", p.C}}
}

// Fprint writes A, b and c to w.
func (p *Problem) Fprint(w io.Writer) {
	for _, m := range p.named() {
		if m.m == nil {
			fmt.Fprintf(w, "%s = <nil>\n", m.name)
			continue
		}
		aux := mat.Formatted(m.m, mat.Prefix("    "), mat.Squeeze())
		r, c := m.m.Dims()
		fmt.Fprintf(w, "%s = %v\n(%d x %d)\n", m.name, aux, r, c)
	}
}
