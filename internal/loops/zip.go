package loops

import (
	"fmt"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

// Zip applies fn to every pair of corresponding elements of a and b.
// It is not cached and not specialized.
func Zip[T any, O element.Ops[T]](a, b *tensor.Tensor[T, O], fn func(x, y T) (T, error)) (*tensor.Tensor[T, O], error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("zip of %v and %v: %w", a.Shape(), b.Shape(), tensor.ErrInvalidShape)
	}
	res, err := tensor.Empty[T, O](a.Shape())
	if err != nil {
		return nil, err
	}
	if err := enumerate[T, O](fn, a, b, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Map applies fn to every element of a.
func Map[T any, O element.Ops[T]](a *tensor.Tensor[T, O], fn func(x T) (T, error)) (*tensor.Tensor[T, O], error) {
	res, err := tensor.Empty[T, O](a.Shape())
	if err != nil {
		return nil, err
	}
	for idx, v := range a.All() {
		r, err := fn(v)
		if err != nil {
			return nil, err
		}
		res.SetUnchecked(r, idx...)
	}
	return res, nil
}
