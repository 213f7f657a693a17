package simplex

import (
	"fmt"
	"slices"
)

// Basis is an ordered set of row indices of A, one per column.
type Basis []int

// Contains reports whether row is basic.
func (b Basis) Contains(row int) bool {
	return slices.Contains(b, row)
}

// Nonbasis returns the rows in [0, eqs) that are not in b, ascending.
func (b Basis) Nonbasis(eqs int) []int {
	n := make([]int, 0, max(eqs-len(b), 0))
	for i := 0; i < eqs; i++ {
		if !b.Contains(i) {
			n = append(n, i)
		}
	}
	return n
}

// Replace returns a new sorted basis with the index at pos swapped for row.
// b is left untouched.
func (b Basis) Replace(pos, row int) Basis {
	next := slices.Clone(b)
	next[pos] = row
	slices.Sort(next)
	return next
}

// key identifies the row set of b regardless of order.
func (b Basis) key() string {
	sorted := slices.Clone(b)
	slices.Sort(sorted)
	return fmt.Sprint([]int(sorted))
}

func (b Basis) validate(eqs, vars int) error {
	if len(b) != vars {
		return fmt.Errorf("basis has %d rows, want %d", len(b), vars)
	}
	seen := make(map[int]bool, len(b))
	for _, row := range b {
		if row < 0 || row >= eqs {
			return fmt.Errorf("basis row %d out of range [0, %d)", row, eqs)
		}
		if seen[row] {
			return fmt.Errorf("basis row %d repeated", row)
		}
		seen[row] = true
	}
	return nil
}
