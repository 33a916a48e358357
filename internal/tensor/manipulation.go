package tensor

import (
	"fmt"
	"iter"

	"github.com/born-ml/gentensor/internal/element"
)

// Stack joins equally shaped tensors along a new leading axis.
//
// Example:
//
//	s, _ := tensor.Stack(a, b) // a, b: [2, 2] -> s: [2, 2, 2]
func Stack[T any, O element.Ops[T]](tensors ...*Tensor[T, O]) (*Tensor[T, O], error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("stack: at least one tensor required: %w", ErrInvalidShape)
	}
	inner := tensors[0].shape
	for i, t := range tensors[1:] {
		if !t.shape.Equal(inner) {
			return nil, fmt.Errorf("stack: tensor %d has shape %v, want %v: %w", i+1, t.shape, inner, ErrInvalidShape)
		}
	}
	res := alloc[T, O](append(Shape{len(tensors)}, inner...))
	for i, t := range tensors {
		if err := res.SetSubtensor(t, i); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// SetSubtensor copies sub into the sub-tensor of t selected by the leading
// indices. sub's shape must equal the remaining axes of t.
func (t *Tensor[T, O]) SetSubtensor(sub *Tensor[T, O], indices ...int) error {
	dst, err := t.View(indices...)
	if err != nil {
		return err
	}
	if !dst.shape.Equal(sub.shape) {
		return fmt.Errorf("subtensor shape %v, want %v: %w", sub.shape, dst.shape, ErrInvalidShape)
	}
	for idx := range sub.shape.Indices() {
		dst.buf.data[dst.index(idx)] = sub.buf.data[sub.index(idx)]
	}
	return nil
}

// Leading yields the indices of the first Rank()-keep axes, i.e. one index
// per trailing sub-tensor of rank keep. keep=2 walks matrices, keep=1 vectors.
func (t *Tensor[T, O]) Leading(keep int) iter.Seq[[]int] {
	if keep > len(t.shape) {
		return func(func([]int) bool) {}
	}
	return t.shape[:len(t.shape)-keep].Indices()
}
