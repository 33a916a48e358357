// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/born-ml/gentensor/internal/loops"
	"github.com/born-ml/gentensor/internal/parallel"
)

// Option adjusts a single operation.
type Option func(*options)

type options struct {
	parallel bool
	safe     bool
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parallel splits the work of an element-wise operation or a matrix product
// across goroutines. Element-wise operations run one task per index of the
// outermost axis.
func Parallel() Option {
	return func(o *options) {
		o.parallel = true
	}
}

// Safe makes echelon forms and determinants keep every entry as a fraction
// until the end, so no intermediate division truncates.
func Safe() Option {
	return func(o *options) {
		o.safe = true
	}
}

func (o options) config() parallel.Config {
	return lo.Ternary(o.parallel, parallel.PerItem(), parallel.Config{Enabled: false})
}

// SetLogger routes the Debug records of procedure builds to l.
// nil discards them, which is the default.
func SetLogger(l *slog.Logger) {
	loops.SetLogger(l)
}

// ProcedureBuilds reports how many element-wise procedures have been built
// for T with ops O in this process.
func ProcedureBuilds[T any, O Ops[T]]() int {
	return loops.Shared[T, O]().Builds()
}

func apply[T any, O Ops[T]](kind loops.Kind, a, b *Tensor[T, O], opts []Option) (*Tensor[T, O], error) {
	return loops.Shared[T, O]().Apply(kind, a, b, collect(opts).parallel)
}

// Add returns a + b element-wise. The shapes must be equal.
//
// Example:
//
//	c, err := tensor.Add(a, b, tensor.Parallel())
func Add[T any, O Ops[T]](a, b *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return apply(loops.Addition, a, b, opts)
}

// Sub returns a - b element-wise.
func Sub[T any, O Ops[T]](a, b *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return apply(loops.Subtraction, a, b, opts)
}

// Mul returns a * b element-wise.
func Mul[T any, O Ops[T]](a, b *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return apply(loops.Multiplication, a, b, opts)
}

// Div returns a / b element-wise. It fails with the first division error of
// the element type, e.g. ErrDivisionByZero for Int.
func Div[T any, O Ops[T]](a, b *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return apply(loops.Division, a, b, opts)
}

// fill returns a tensor shaped like a with every element a copy of s.
func fill[T any, O Ops[T]](a *Tensor[T, O], s T) (*Tensor[T, O], error) {
	var o O
	return FromFunc[T, O](a.Shape(), func([]int) T { return o.Copy(s) })
}

func applyScalar[T any, O Ops[T]](kind loops.Kind, a *Tensor[T, O], s T, opts []Option) (*Tensor[T, O], error) {
	b, err := fill(a, s)
	if err != nil {
		return nil, err
	}
	return apply(kind, a, b, opts)
}

// AddScalar returns a + s for every element of a.
func AddScalar[T any, O Ops[T]](a *Tensor[T, O], s T, opts ...Option) (*Tensor[T, O], error) {
	return applyScalar(loops.Addition, a, s, opts)
}

// SubScalar returns a - s for every element of a.
func SubScalar[T any, O Ops[T]](a *Tensor[T, O], s T, opts ...Option) (*Tensor[T, O], error) {
	return applyScalar(loops.Subtraction, a, s, opts)
}

// MulScalar returns a * s for every element of a.
func MulScalar[T any, O Ops[T]](a *Tensor[T, O], s T, opts ...Option) (*Tensor[T, O], error) {
	return applyScalar(loops.Multiplication, a, s, opts)
}

// DivScalar returns a / s for every element of a.
func DivScalar[T any, O Ops[T]](a *Tensor[T, O], s T, opts ...Option) (*Tensor[T, O], error) {
	return applyScalar(loops.Division, a, s, opts)
}

// Negate returns -a.
func Negate[T any, O Ops[T]](a *Tensor[T, O]) (*Tensor[T, O], error) {
	var o O
	return loops.Map(a, func(x T) (T, error) { return o.Negate(x), nil })
}

// Zip applies fn to every pair of corresponding elements. Unlike Add and
// friends the loop is not specialized.
func Zip[T any, O Ops[T]](a, b *Tensor[T, O], fn func(x, y T) (T, error)) (*Tensor[T, O], error) {
	return loops.Zip(a, b, fn)
}
