// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/samber/lo"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/serialization"
	"github.com/born-ml/gentensor/internal/tensor"
)

// Type aliases for public API

// Ops is the arithmetic capability of an element type.
type Ops[T any] = element.Ops[T]

// Tensor is a strided N-dimensional array of T with arithmetic from O.
//
// Example:
//
//	m := tensor.Must(tensor.New[float64, tensor.Float[float64]](2, 3))
//	_ = m.Set(1.5, 0, 2)
type Tensor[T any, O Ops[T]] = tensor.Tensor[T, O]

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Element constraints.
type (
	Signed        = element.Signed
	Floating      = element.Floating
	ComplexNumber = element.ComplexNumber
)

// Built-in element ops.
type (
	Int[T Signed]                = element.Int[T]
	Float[T Floating]            = element.Float[T]
	Complex[T ComplexNumber]     = element.Complex[T]
	Rational                     = element.Rational
	Byte                         = element.Byte
	Fraction[T any]              = element.Fraction[T]
	FractionOps[T any, O Ops[T]] = element.FractionOps[T, O]
)

// Errors returned by this package. Match them with errors.Is.
var (
	ErrInvalidShape         = tensor.ErrInvalidShape
	ErrIndexOutOfBounds     = tensor.ErrIndexOutOfBounds
	ErrDivisionByZero       = element.ErrDivisionByZero
	ErrUnsupportedOperation = element.ErrUnsupportedOperation
	ErrNotImplemented       = element.ErrNotImplemented
	ErrMalformedData        = element.ErrMalformedData
	ErrChecksumMismatch     = serialization.ErrChecksumMismatch
	ErrInvalidMagic         = serialization.ErrInvalidMagic
	ErrUnsupportedVersion   = serialization.ErrUnsupportedVersion
	ErrTruncated            = serialization.ErrTruncated
)

// Must returns v or panics if err is non-nil. It is meant for literals in
// tests and examples.
func Must[T any](v T, err error) T {
	return lo.Must(v, err)
}

// Creation functions

// New creates a tensor of the given shape filled with O.Zero().
//
// Example:
//
//	x, err := tensor.New[int, tensor.Int[int]](2, 3)
func New[T any, O Ops[T]](shape ...int) (*Tensor[T, O], error) {
	return tensor.New[T, O](shape...)
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied.
//
// Example:
//
//	x, err := tensor.FromSlice[float64, tensor.Float[float64]]([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T any, O Ops[T]](data []T, shape ...int) (*Tensor[T, O], error) {
	return tensor.FromSlice[T, O](data, shape...)
}

// Vector creates a rank-1 tensor holding values.
func Vector[T any, O Ops[T]](values ...T) *Tensor[T, O] {
	return tensor.Vector[T, O](values...)
}

// Matrix creates a rank-2 tensor from rows, which must be non-empty and of
// equal length.
//
// Example:
//
//	m, err := tensor.Matrix[int, tensor.Int[int]]([][]int{{1, 2}, {3, 4}})
func Matrix[T any, O Ops[T]](rows [][]T) (*Tensor[T, O], error) {
	return tensor.Matrix[T, O](rows)
}

// FromFunc creates a tensor whose element at idx is fn(idx). idx is reused
// between calls.
func FromFunc[T any, O Ops[T]](shape Shape, fn func(idx []int) T) (*Tensor[T, O], error) {
	return tensor.FromFunc[T, O](shape, fn)
}

// Identity creates an n×n identity matrix.
func Identity[T any, O Ops[T]](n int) (*Tensor[T, O], error) {
	return tensor.Identity[T, O](n)
}

// IdentityTensor creates a tensor of shape lead + [n, n] whose trailing
// matrices are all identities.
func IdentityTensor[T any, O Ops[T]](lead Shape, n int) (*Tensor[T, O], error) {
	return tensor.IdentityTensor[T, O](lead, n)
}

// Stack joins equally shaped tensors along a new leading axis.
//
// Example:
//
//	s, err := tensor.Stack(a, b) // a, b: [2, 2] -> s: [2, 2, 2]
func Stack[T any, O Ops[T]](tensors ...*Tensor[T, O]) (*Tensor[T, O], error) {
	return tensor.Stack(tensors...)
}

// Equal reports whether a and b have the same shape and equal elements.
func Equal[T any, O Ops[T]](a, b *Tensor[T, O]) bool {
	return a.Equal(b)
}
