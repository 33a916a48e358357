// Package echelon computes row echelon forms of matrices over any element
// type.
//
// Every form comes in two policies. The simple policy divides with O.Divide
// as it goes, which for integer elements truncates. The safe policy lifts the
// matrix into element.Fraction values, runs the same algorithm with
// element.FractionOps so no division happens during elimination, and divides
// each entry once at the end. Neither policy pivots.
package echelon

import (
	"fmt"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

// Form selects the echelon form to compute.
type Form int

const (
	// Row is the upper-triangular form left by Gaussian elimination.
	Row Form = iota
	// LeadingOnes is Row with every non-zero row scaled to a leading one.
	LeadingOnes
	// Reduced is the reduced row echelon form.
	Reduced
)

func (f Form) String() string {
	switch f {
	case Row:
		return "row echelon form"
	case LeadingOnes:
		return "row echelon form with leading ones"
	case Reduced:
		return "reduced row echelon form"
	default:
		return fmt.Sprintf("form(%d)", int(f))
	}
}

func requireMatrix[T any, O element.Ops[T]](t *tensor.Tensor[T, O], what string) error {
	if !t.IsMatrix() {
		return fmt.Errorf("echelon: %s of tensor with shape [%v]: %w", what, t.Shape(), tensor.ErrInvalidShape)
	}
	return nil
}

// Simple computes form of t with direct division. t is not modified.
func Simple[T any, O element.Ops[T]](t *tensor.Tensor[T, O], form Form) (*tensor.Tensor[T, O], error) {
	if err := requireMatrix(t, form.String()); err != nil {
		return nil, err
	}
	m := t.Copy(true)
	if err := transform(rowsOf(m), form); err != nil {
		return nil, fmt.Errorf("echelon: %s: %w", form, err)
	}
	return m, nil
}

// Safe computes form of t over fractions and collapses the result. t is not
// modified.
func Safe[T any, O element.Ops[T]](t *tensor.Tensor[T, O], form Form) (*tensor.Tensor[T, O], error) {
	if err := requireMatrix(t, form.String()); err != nil {
		return nil, err
	}
	w, err := lift(t)
	if err != nil {
		return nil, err
	}
	if err := transform(rowsOf(w), form); err != nil {
		return nil, fmt.Errorf("echelon: %s: %w", form, err)
	}
	res, err := collapse(w)
	if err != nil {
		return nil, fmt.Errorf("echelon: %s: %w", form, err)
	}
	return res, nil
}

type fractions[T any, O element.Ops[T]] = tensor.Tensor[element.Fraction[T], element.FractionOps[T, O]]

// lift copies t into a contiguous fraction matrix with unit denominators.
func lift[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (*fractions[T, O], error) {
	var o O
	return tensor.FromFunc[element.Fraction[T], element.FractionOps[T, O]](t.Shape(), func(idx []int) element.Fraction[T] {
		return element.NewFraction[T, O](o.Copy(t.AtUnchecked(idx...)))
	})
}

// collapse divides every fraction of w once.
func collapse[T any, O element.Ops[T]](w *fractions[T, O]) (*tensor.Tensor[T, O], error) {
	res, err := tensor.Empty[T, O](w.Shape())
	if err != nil {
		return nil, err
	}
	for idx, f := range w.All() {
		v, err := element.Collapse[T, O](f)
		if err != nil {
			return nil, fmt.Errorf("entry %v: %w", idx, err)
		}
		res.SetUnchecked(v, idx...)
	}
	return res, nil
}

// RowEchelon returns the row echelon form of t.
func RowEchelon[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	return Simple(t, Row)
}

// RowEchelonSafe is RowEchelon with deferred division.
func RowEchelonSafe[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	return Safe(t, Row)
}

// RowEchelonLeadingOnes returns the row echelon form of t with every
// non-zero row scaled so its leading element is one.
func RowEchelonLeadingOnes[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	return Simple(t, LeadingOnes)
}

// RowEchelonLeadingOnesSafe is RowEchelonLeadingOnes with deferred division.
func RowEchelonLeadingOnesSafe[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	return Safe(t, LeadingOnes)
}

// ReducedRowEchelon returns the reduced row echelon form of t.
func ReducedRowEchelon[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	return Simple(t, Reduced)
}

// ReducedRowEchelonSafe is ReducedRowEchelon with deferred division.
func ReducedRowEchelonSafe[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	return Safe(t, Reduced)
}
