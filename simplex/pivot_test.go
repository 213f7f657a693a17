package simplex

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/dualsimplex/model"
)

func newSolver(t *testing.T, opts ...Option) *Solver {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func TestPivotSteps(t *testing.T) {
	// phase I problem of A = [[1,0],[0,1],[1,1]], c = [1,1]
	p := model.NewProblem(
		mat.NewDense(5, 2, []float64{1, 0, 0, 1, 1, 1, 1, 0, 0, 1}),
		column(0, 0, 0, 1, 1),
		column(1, 1),
	)
	s := newSolver(t)

	basis := Basis{3, 4}
	out, next := s.Pivot(p, basis)
	require.Nil(t, out)
	assert.Equal(t, Basis{0, 4}, next)
	assert.Equal(t, Basis{3, 4}, basis)

	out, next = s.Pivot(p, next)
	require.Nil(t, out)
	assert.Equal(t, Basis{0, 1}, next)

	out, next = s.Pivot(p, next)
	assert.Nil(t, next)
	opt := requireOptimal(t, out)
	assert.Equal(t, 0.0, opt.Value)
	assert.Equal(t, []float64{1, 1, 0, 0, 0}, mat.Col(nil, 0, opt.Y))
	assert.Equal(t, []float64{0, 0}, mat.Col(nil, 0, opt.X))
}

func TestPivotTerminates(t *testing.T) {
	aux, start, err := Auxiliary(model.NewProblem(
		mat.NewDense(6, 2, []float64{1, 0, 0, 1, 1, 1, 1, 2, 2, 1, -1, 3}),
		column(0, 0, 0, 0, 0, 0),
		column(1, 1),
	))
	require.NoError(t, err)
	s := newSolver(t, WithTolerance(tol))

	// there are C(8, 2) = 28 bases, none may repeat
	seen := map[string]bool{}
	basis := start
	for _i := 0; _i < 28; _i++ {
		key := fmt.Sprint(basis)
		require.False(t, seen[key], "basis %v revisited", basis)
		seen[key] = true

		out, next := s.Pivot(aux, basis)
		if out != nil {
			requireOptimal(t, out)
			return
		}
		require.True(t, slices.IsSorted(next))
		basis = next
	}
	t.Fatal("pivoting did not terminate")
}

func TestPivotInvalid(t *testing.T) {
	s := newSolver(t)
	for _, test := range []struct {
		name   string
		p      *model.Problem
		basis  Basis
		reason string
	}{
		{
			name:   "singular",
			p:      model.NewProblem(mat.NewDense(3, 2, []float64{1, 1, 1, 1, 1, 0}), column(0, 0, 0), column(1, 1)),
			basis:  Basis{0, 1},
			reason: "basis matrix not invertible",
		},
		{
			name:   "not admissible",
			p:      model.NewProblem(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), column(0, 0), column(-1, 1)),
			basis:  Basis{0, 1},
			reason: "basis not dual-admissible",
		},
		{
			name:   "short basis",
			p:      model.NewProblem(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), column(0, 0), column(1, 1)),
			basis:  Basis{0},
			reason: "basis has 1 rows, want 2",
		},
		{
			name:   "out of range",
			p:      model.NewProblem(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), column(0, 0), column(1, 1)),
			basis:  Basis{0, 2},
			reason: "basis row 2 out of range [0, 2)",
		},
		{
			name:   "repeated",
			p:      model.NewProblem(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), column(0, 0), column(1, 1)),
			basis:  Basis{1, 1},
			reason: "basis row 1 repeated",
		},
		{
			name:   "shape",
			p:      model.NewProblem(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), column(0, 0), column(1, 1, 1)),
			basis:  Basis{0, 1},
			reason: model.ErrShape.Error(),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			out, next := s.Pivot(test.p, test.basis)
			assert.Nil(t, next)
			inv, ok := out.(Invalid)
			require.Truef(t, ok, "want invalid, got %v", out)
			assert.Contains(t, inv.Reason, test.reason)
		})
	}
}

func TestPivotUnbounded(t *testing.T) {
	p := model.NewProblem(mat.NewDense(2, 1, []float64{1, -1}), column(0, -1), column(1))
	out, next := newSolver(t).Pivot(p, Basis{0})
	assert.Nil(t, next)
	assert.Equal(t, Unbounded{}, out)
}

func TestBasis(t *testing.T) {
	b := Basis{4, 1}
	assert.True(t, b.Contains(1))
	assert.False(t, b.Contains(0))
	assert.Equal(t, []int{0, 2, 3}, b.Nonbasis(5))
	assert.Empty(t, Basis{0, 1}.Nonbasis(2))

	next := b.Replace(0, 3)
	assert.Equal(t, Basis{1, 3}, next)
	assert.Equal(t, Basis{4, 1}, b)
}


func TestPivotIllConditioned(t *testing.T) {
	// cond(Ab) = 1e17 exceeds mat.ConditionTolerance but Ab is invertible
	p := model.NewProblem(mat.NewDense(2, 2, []float64{1, 0, 0, 1e-17}), column(0, 0), column(1, 1e-17))
	out, next := newSolver(t).Pivot(p, Basis{0, 1})
	assert.Nil(t, next)
	opt := requireOptimal(t, out)
	assert.InDelta(t, 1, opt.Y.At(0, 0), 1e-12)
	assert.InDelta(t, 1, opt.Y.At(1, 0), 1e-12)
}

func TestSingular(t *testing.T) {
	assert.False(t, singular(nil))
	assert.False(t, singular(mat.Condition(1e17)))
	assert.True(t, singular(mat.Condition(math.Inf(1))))
	assert.True(t, singular(mat.ErrShape))
}
