package simplex

import (
	"q.log/dualsimplex/model"
)

// Auxiliary builds the phase I problem of p together with a basis that is
// dual-admissible for it.
//
// Columns with a negative cost are negated so that c >= 0, then one slack
// row e_j' is appended per column. The rhs is 0 on the original rows and 1
// on the slack rows, and the slack rows form the starting basis.
func Auxiliary(p *model.Problem) (*model.Problem, Basis, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	eqs, vars := p.Eqs(), p.Vars()

	aux := p.Clone()
	for j := 0; j < vars; j++ {
		if aux.C.At(j, 0) < 0 {
			if err := aux.ScaleCol(j, -1); err != nil {
				return nil, nil, err
			}
		}
	}

	basis := make(Basis, vars)
	for j := 0; j < vars; j++ {
		slack := make([]float64, vars)
		slack[j] = 1
		if err := aux.AddRow(slack, 1); err != nil {
			return nil, nil, err
		}
		basis[j] = eqs + j
	}

	bVec := make([]float64, eqs+vars)
	for i := eqs; i < eqs+vars; i++ {
		bVec[i] = 1
	}
	if err := aux.SetB(bVec); err != nil {
		return nil, nil, err
	}

	return aux, basis, nil
}
