package linalg

import (
	"fmt"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

func requireVectors[T any, O element.Ops[T]](op string, a, b *tensor.Tensor[T, O]) error {
	if !a.IsVector() || !b.IsVector() {
		return fmt.Errorf("%s: both operands must be vectors, got [%v] and [%v]: %w", op, a.Shape(), b.Shape(), tensor.ErrInvalidShape)
	}
	if a.Shape()[0] != b.Shape()[0] {
		return fmt.Errorf("%s: lengths %d and %d differ: %w", op, a.Shape()[0], b.Shape()[0], tensor.ErrInvalidShape)
	}
	return nil
}

// Dot returns the sum of the element-wise products of two vectors.
func Dot[T any, O element.Ops[T]](a, b *tensor.Tensor[T, O]) (T, error) {
	var o O
	if err := requireVectors("dot", a, b); err != nil {
		return o.Zero(), err
	}
	sum := o.Zero()
	for i := 0; i < a.Shape()[0]; i++ {
		sum = o.Add(sum, o.Multiply(a.AtUnchecked(i), b.AtUnchecked(i)))
	}
	return sum, nil
}

// Cross returns the cross product of two 3-vectors.
func Cross[T any, O element.Ops[T]](a, b *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	if err := requireVectors("cross", a, b); err != nil {
		return nil, err
	}
	if n := a.Shape()[0]; n != 3 {
		return nil, fmt.Errorf("cross: vectors of length %d: %w", n, element.ErrUnsupportedOperation)
	}
	return tensor.Vector[T, O](cross3(a, b)...), nil
}

func cross3[T any, O element.Ops[T]](a, b *tensor.Tensor[T, O]) []T {
	var o O
	a0, a1, a2 := a.AtUnchecked(0), a.AtUnchecked(1), a.AtUnchecked(2)
	b0, b1, b2 := b.AtUnchecked(0), b.AtUnchecked(1), b.AtUnchecked(2)
	return []T{
		o.Subtract(o.Multiply(a1, b2), o.Multiply(a2, b1)),
		o.Subtract(o.Multiply(a2, b0), o.Multiply(a0, b2)),
		o.Subtract(o.Multiply(a0, b1), o.Multiply(a1, b0)),
	}
}

// BatchCross computes Cross for every pair of trailing vectors. Both
// operands must have the same shape with a last axis of length 3.
func BatchCross[T any, O element.Ops[T]](a, b *tensor.Tensor[T, O]) (*tensor.Tensor[T, O], error) {
	if a.Rank() < 1 || !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("batch cross: shapes [%v] and [%v]: %w", a.Shape(), b.Shape(), tensor.ErrInvalidShape)
	}
	if n := a.Shape()[a.Rank()-1]; n != 3 {
		return nil, fmt.Errorf("batch cross: vectors of length %d: %w", n, element.ErrUnsupportedOperation)
	}
	res, err := tensor.Empty[T, O](a.Shape())
	if err != nil {
		return nil, err
	}
	for idx := range a.Leading(1) {
		av, _ := a.View(idx...)
		bv, _ := b.View(idx...)
		dst, _ := res.View(idx...)
		for i, v := range cross3(av, bv) {
			dst.SetUnchecked(v, i)
		}
	}
	return res, nil
}
