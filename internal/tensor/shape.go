package tensor

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every extent is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("dimension %d is %d: %w", i, dim, ErrInvalidShape)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Indices yields every valid multi-index of the shape in row-major order,
// last axis fastest. The yielded slice is reused between iterations; copy it
// to retain it. A shape with a zero extent yields nothing; a rank-0 shape
// yields one empty index.
func (s Shape) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, dim := range s {
			if dim == 0 {
				return
			}
		}
		idx := make([]int, len(s))
		for {
			if !yield(idx) {
				return
			}
			axis := len(s) - 1
			for ; axis >= 0; axis-- {
				idx[axis]++
				if idx[axis] < s[axis] {
					break
				}
				idx[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

// String renders the shape as "2 x 3 x 4".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return strings.Join(parts, " x ")
}
