package tensor

import (
	"fmt"

	"github.com/born-ml/gentensor/internal/element"
)

// Vector creates a rank-1 tensor holding values.
//
// Example:
//
//	v := tensor.Vector[float64, element.Float[float64]](1, 2, 3) // Shape: [3]
func Vector[T any, O element.Ops[T]](values ...T) *Tensor[T, O] {
	t := alloc[T, O](Shape{len(values)})
	copy(t.buf.data, values)
	return t
}

// Matrix creates a rank-2 tensor from rows. Rows must be non-empty and of
// equal length.
func Matrix[T any, O element.Ops[T]](rows [][]T) (*Tensor[T, O], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix needs at least one row and column: %w", ErrInvalidShape)
	}
	width := len(rows[0])
	t := alloc[T, O](Shape{len(rows), width})
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), width, ErrInvalidShape)
		}
		copy(t.buf.data[i*width:], row)
	}
	return t, nil
}

// FromFunc creates a tensor whose element at idx is fn(idx). The index slice
// passed to fn is reused between calls.
func FromFunc[T any, O element.Ops[T]](shape Shape, fn func(idx []int) T) (*Tensor[T, O], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	t := alloc[T, O](shape)
	i := 0
	for idx := range shape.Indices() {
		t.buf.data[i] = fn(idx)
		i++
	}
	return t, nil
}

// Identity creates an n x n identity matrix.
func Identity[T any, O element.Ops[T]](n int) (*Tensor[T, O], error) {
	return FromFunc[T, O](Shape{n, n}, func(idx []int) T {
		var o O
		if idx[0] == idx[1] {
			return o.One()
		}
		return o.Zero()
	})
}

// IdentityTensor creates a tensor of shape lead ++ [n, n] whose every
// trailing matrix is the n x n identity.
func IdentityTensor[T any, O element.Ops[T]](lead Shape, n int) (*Tensor[T, O], error) {
	shape := append(lead.Clone(), n, n)
	return FromFunc[T, O](shape, func(idx []int) T {
		var o O
		if idx[len(idx)-2] == idx[len(idx)-1] {
			return o.One()
		}
		return o.Zero()
	})
}
