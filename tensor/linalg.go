// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gentensor/internal/echelon"
	"github.com/born-ml/gentensor/internal/linalg"
)

// Linear algebra

// MatMul performs matrix multiplication: [M, K] @ [K, N] -> [M, N].
//
// Example:
//
//	c, err := tensor.MatMul(a, b)
func MatMul[T any, O Ops[T]](a, b *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return linalg.MatMul(a, b, collect(opts).config())
}

// BatchMatMul multiplies every pair of trailing matrices of a and b, whose
// leading dimensions must match: [B, M, K] @ [B, K, N] -> [B, M, N].
func BatchMatMul[T any, O Ops[T]](a, b *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return linalg.BatchMatMul(a, b, collect(opts).config())
}

// Dot returns the dot product of two vectors of equal length.
func Dot[T any, O Ops[T]](a, b *Tensor[T, O]) (T, error) {
	return linalg.Dot(a, b)
}

// Cross returns the cross product of two 3-vectors. Other lengths fail with
// ErrUnsupportedOperation.
func Cross[T any, O Ops[T]](a, b *Tensor[T, O]) (*Tensor[T, O], error) {
	return linalg.Cross(a, b)
}

// BatchCross computes Cross for every pair of trailing 3-vectors.
func BatchCross[T any, O Ops[T]](a, b *Tensor[T, O]) (*Tensor[T, O], error) {
	return linalg.BatchCross(a, b)
}

// Echelon forms

func form[T any, O Ops[T]](t *Tensor[T, O], f echelon.Form, opts []Option) (*Tensor[T, O], error) {
	if collect(opts).safe {
		return echelon.Safe(t, f)
	}
	return echelon.Simple(t, f)
}

// RowEchelon returns the row echelon form of a matrix, computed by Gaussian
// elimination without pivoting. A zero pivot surfaces as the element type's
// division error.
//
// Example:
//
//	r, err := tensor.RowEchelon(m, tensor.Safe())
func RowEchelon[T any, O Ops[T]](t *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return form(t, echelon.Row, opts)
}

// RowEchelonLeadingOnes returns the row echelon form with every non-zero
// row scaled to a leading one.
func RowEchelonLeadingOnes[T any, O Ops[T]](t *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return form(t, echelon.LeadingOnes, opts)
}

// ReducedRowEchelon returns the reduced row echelon form.
func ReducedRowEchelon[T any, O Ops[T]](t *Tensor[T, O], opts ...Option) (*Tensor[T, O], error) {
	return form(t, echelon.Reduced, opts)
}

// Determinant returns the determinant of a square matrix as the product of
// the diagonal of its row echelon form.
func Determinant[T any, O Ops[T]](t *Tensor[T, O], opts ...Option) (T, error) {
	if collect(opts).safe {
		return echelon.DeterminantSafe(t)
	}
	return echelon.Determinant(t)
}
