// Package tensor implements dense, strided N-dimensional storage for any
// element type that provides an element.Ops capability.
//
// A Tensor is a descriptor (shape, strides, offset) over a shared buffer.
// Tensors created by New own a fresh buffer; views created by View or
// Transpose share the buffer of their source, so writes through either are
// visible through both. Callers decide when a Copy is needed.
//
// Shape, rank and bounds checks are on by default. Building with the
// gentensor_trusted tag compiles them out of the hot paths (see Checked); that
// is an opt-in trade-off for callers that validate their inputs themselves.
package tensor

import (
	"fmt"
	"iter"

	"github.com/born-ml/gentensor/internal/element"
)

// buffer is the backing store shared between a tensor and its views.
type buffer[T any] struct {
	data []T
}

// Tensor is a strided view over a buffer of T, with arithmetic supplied by O.
type Tensor[T any, O element.Ops[T]] struct {
	buf    *buffer[T] // Shared with views
	shape  Shape      // Tensor dimensions
	stride []int      // Memory strides (row-major for fresh tensors)
	offset int        // Offset of element [0, 0, ...] in buf
}

// New creates a tensor of the given shape filled with O.Zero().
func New[T any, O element.Ops[T]](shape ...int) (*Tensor[T, O], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	t := alloc[T, O](s)
	var o O
	for i := range t.buf.data {
		t.buf.data[i] = o.Zero()
	}
	return t, nil
}

// alloc creates a tensor over an uninitialized buffer. The shape must be valid.
func alloc[T any, O element.Ops[T]](shape Shape) *Tensor[T, O] {
	return &Tensor[T, O]{
		buf:    &buffer[T]{data: make([]T, shape.NumElements())},
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// Empty creates a tensor whose elements are the Go zero value of T. It is
// meant for results that are fully overwritten right away.
func Empty[T any, O element.Ops[T]](shape Shape) (*Tensor[T, O], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return alloc[T, O](shape), nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T any, O element.Ops[T]](data []T, shape ...int) (*Tensor[T, O], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w", s, s.NumElements(), len(data), ErrInvalidShape)
	}
	t := alloc[T, O](s)
	copy(t.buf.data, data)
	return t, nil
}

// Shape returns the tensor's shape. The result must not be modified.
func (t *Tensor[T, O]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides. The result must not be modified.
func (t *Tensor[T, O]) Strides() []int {
	return t.stride
}

// Offset returns the linear offset of the first element in Data.
func (t *Tensor[T, O]) Offset() int {
	return t.offset
}

// Data returns the whole shared buffer. Element idx lives at
// Offset() + Σ idx[i]*Strides()[i].
//
// WARNING: Modifications to the returned slice modify every view of it.
func (t *Tensor[T, O]) Data() []T {
	return t.buf.data
}

// Rank returns the number of axes.
func (t *Tensor[T, O]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T, O]) NumElements() int {
	return t.shape.NumElements()
}

// IsMatrix reports whether the tensor has exactly two axes.
func (t *Tensor[T, O]) IsMatrix() bool {
	return len(t.shape) == 2
}

// IsVector reports whether the tensor has exactly one axis.
func (t *Tensor[T, O]) IsVector() bool {
	return len(t.shape) == 1
}

// Shares reports whether t and other are backed by the same buffer.
func (t *Tensor[T, O]) Shares(other *Tensor[T, O]) bool {
	return t.buf == other.buf
}

// Index converts a multi-index into a position in Data.
func (t *Tensor[T, O]) Index(indices ...int) (int, error) {
	if err := t.checkIndex(indices); err != nil {
		return 0, err
	}
	return t.index(indices), nil
}

func (t *Tensor[T, O]) index(indices []int) int {
	lin := t.offset
	for i, idx := range indices {
		lin += idx * t.stride[i]
	}
	return lin
}

func (t *Tensor[T, O]) checkIndex(indices []int) error {
	if !Checked {
		return nil
	}
	if len(indices) != len(t.shape) {
		return fmt.Errorf("expected %d indices, got %d: %w", len(t.shape), len(indices), ErrIndexOutOfBounds)
	}
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return fmt.Errorf("index %d out of bounds for dimension %d (size %d): %w", idx, i, t.shape[i], ErrIndexOutOfBounds)
		}
	}
	return nil
}

// At returns the element at the given indices.
func (t *Tensor[T, O]) At(indices ...int) (T, error) {
	if err := t.checkIndex(indices); err != nil {
		var zero T
		return zero, err
	}
	return t.buf.data[t.index(indices)], nil
}

// AtUnchecked returns the element at the given indices without validating
// them. Out-of-range indices are undefined behaviour.
func (t *Tensor[T, O]) AtUnchecked(indices ...int) T {
	return t.buf.data[t.index(indices)]
}

// Set stores value at the given indices.
func (t *Tensor[T, O]) Set(value T, indices ...int) error {
	if err := t.checkIndex(indices); err != nil {
		return err
	}
	t.buf.data[t.index(indices)] = value
	return nil
}

// SetUnchecked stores value without validating the indices.
func (t *Tensor[T, O]) SetUnchecked(value T, indices ...int) {
	t.buf.data[t.index(indices)] = value
}

// View returns the sub-tensor obtained by fixing the leading axes to indices.
// The view shares t's buffer.
//
// Example:
//
//	m, _ := tensor.New[int, element.Int[int]](3, 4)
//	row, _ := m.View(1) // Shape: [4], writes go to m
func (t *Tensor[T, O]) View(indices ...int) (*Tensor[T, O], error) {
	if Checked {
		if len(indices) > len(t.shape) {
			return nil, fmt.Errorf("view of %d axes on rank %d tensor: %w", len(indices), len(t.shape), ErrIndexOutOfBounds)
		}
		for i, idx := range indices {
			if idx < 0 || idx >= t.shape[i] {
				return nil, fmt.Errorf("index %d out of bounds for dimension %d (size %d): %w", idx, i, t.shape[i], ErrIndexOutOfBounds)
			}
		}
	}
	off := t.offset
	for i, idx := range indices {
		off += idx * t.stride[i]
	}
	k := len(indices)
	return &Tensor[T, O]{
		buf:    t.buf,
		shape:  t.shape[k:].Clone(),
		stride: append([]int(nil), t.stride[k:]...),
		offset: off,
	}, nil
}

// Transpose returns a view with axes a1 and a2 swapped.
func (t *Tensor[T, O]) Transpose(a1, a2 int) (*Tensor[T, O], error) {
	if a1 < 0 || a1 >= len(t.shape) || a2 < 0 || a2 >= len(t.shape) {
		return nil, fmt.Errorf("transpose axes %d, %d on rank %d tensor: %w", a1, a2, len(t.shape), ErrInvalidShape)
	}
	v := &Tensor[T, O]{
		buf:    t.buf,
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		offset: t.offset,
	}
	v.shape[a1], v.shape[a2] = v.shape[a2], v.shape[a1]
	v.stride[a1], v.stride[a2] = v.stride[a2], v.stride[a1]
	return v, nil
}

// Indices yields every multi-index of t in row-major order. See Shape.Indices.
func (t *Tensor[T, O]) Indices() iter.Seq[[]int] {
	return t.shape.Indices()
}

// All yields every (multi-index, element) pair in row-major order.
func (t *Tensor[T, O]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for idx := range t.shape.Indices() {
			if !yield(idx, t.buf.data[t.index(idx)]) {
				return
			}
		}
	}
}

// Copy returns a contiguous tensor with t's contents. With deep set, every
// element goes through O.Copy, which matters for mutable element types.
func (t *Tensor[T, O]) Copy(deep bool) *Tensor[T, O] {
	res := alloc[T, O](t.shape)
	var o O
	i := 0
	for idx := range t.shape.Indices() {
		v := t.buf.data[t.index(idx)]
		if deep {
			v = o.Copy(v)
		}
		res.buf.data[i] = v
		i++
	}
	return res
}

// Equal reports whether t and other have equal shapes and O.Equal elements.
func (t *Tensor[T, O]) Equal(other *Tensor[T, O]) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !t.shape.Equal(other.shape) {
		return false
	}
	var o O
	for idx := range t.shape.Indices() {
		if !o.Equal(t.buf.data[t.index(idx)], other.buf.data[other.index(idx)]) {
			return false
		}
	}
	return true
}
