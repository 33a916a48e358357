package echelon

import (
	"fmt"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

func requireSquare[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) error {
	if err := requireMatrix(t, "determinant"); err != nil {
		return err
	}
	if s := t.Shape(); s[0] != s[1] {
		return fmt.Errorf("echelon: determinant of non-square matrix [%v]: %w", s, tensor.ErrInvalidShape)
	}
	return nil
}

// diagonal multiplies the diagonal of r. The empty product is One.
func diagonal[T any, O element.Ops[T]](r rows[T, O]) T {
	var o O
	p := o.One()
	for i := 0; i < r.m; i++ {
		p = o.Multiply(p, r.at(i, i))
	}
	return p
}

// Determinant returns the product of the diagonal of t's row echelon form.
func Determinant[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (T, error) {
	var zero T
	if err := requireSquare(t); err != nil {
		return zero, err
	}
	m := t.Copy(true)
	r := rowsOf(m)
	if err := eliminate(r); err != nil {
		return zero, fmt.Errorf("echelon: determinant: %w", err)
	}
	return diagonal(r), nil
}

// DeterminantSafe is Determinant with a single division at the end.
func DeterminantSafe[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) (T, error) {
	var zero T
	if err := requireSquare(t); err != nil {
		return zero, err
	}
	w, err := lift(t)
	if err != nil {
		return zero, err
	}
	r := rowsOf(w)
	if err := eliminate(r); err != nil {
		return zero, fmt.Errorf("echelon: determinant: %w", err)
	}
	d, err := element.Collapse[T, O](diagonal(r))
	if err != nil {
		return zero, fmt.Errorf("echelon: determinant: %w", err)
	}
	return d, nil
}
