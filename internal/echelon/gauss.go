package echelon

import (
	"github.com/born-ml/gentensor/internal/element"
)

// eliminate reduces r to upper-triangular form by Gaussian elimination
// without pivoting. A zero pivot is handed to O.Divide unchanged. The
// eliminated entry is stored as an exact zero, so rounding in inexact types
// never leaves a residue that leading would mistake for a pivot.
func eliminate[T any, O element.Ops[T]](r rows[T, O]) error {
	var o O
	for k := 1; k < r.n; k++ {
		for j := k; j < r.m; j++ {
			c, err := o.Divide(r.at(j, k-1), r.at(k-1, k-1))
			if err != nil {
				return err
			}
			r.add(j, k-1, o.Negate(c))
			r.zero(j, k-1)
		}
	}
	return nil
}

// normalize scales every non-zero row of r by the inverse of its leading
// element.
func normalize[T any, O element.Ops[T]](r rows[T, O]) error {
	for i := 0; i < r.m; i++ {
		_, lead, ok := r.leading(i)
		if !ok {
			continue
		}
		inv, err := element.Inverse[T, O](lead)
		if err != nil {
			return err
		}
		r.scale(i, inv)
	}
	return nil
}

// backSubstitute clears every column above a leading element, walking the
// rows bottom to top, and scales each pivot row to a leading one. Cleared
// entries are stored as exact zeros.
func backSubstitute[T any, O element.Ops[T]](r rows[T, O]) error {
	var o O
	for i := r.m - 1; i >= 0; i-- {
		col, lead, ok := r.leading(i)
		if !ok {
			continue
		}
		for above := 0; above < i; above++ {
			c, err := o.Divide(r.at(above, col), lead)
			if err != nil {
				return err
			}
			r.add(above, i, o.Negate(c))
			r.zero(above, col)
		}
		inv, err := element.Inverse[T, O](lead)
		if err != nil {
			return err
		}
		r.scale(i, inv)
	}
	return nil
}

func transform[T any, O element.Ops[T]](r rows[T, O], form Form) error {
	if err := eliminate(r); err != nil {
		return err
	}
	switch form {
	case LeadingOnes:
		return normalize(r)
	case Reduced:
		return backSubstitute(r)
	}
	return nil
}
