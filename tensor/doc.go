// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides generic N-dimensional tensors over any element type.
//
// # Overview
//
// A tensor's element type T is paired with an ops type O that supplies its
// arithmetic. The package ships ops for built-in numbers and *big.Rat:
//   - Int[T]: signed integers (division truncates, x/0 is an error)
//   - Float[T]: float32, float64 (IEEE division)
//   - Complex[T]: complex64, complex128
//   - Rational: *big.Rat (exact)
//   - Byte: uint8 without division or serialization
//
// Any other type works once it has an Ops implementation.
//
// # Basic Usage
//
//	import "github.com/born-ml/gentensor/tensor"
//
//	func main() {
//	    a := tensor.Must(tensor.Matrix[int, tensor.Int[int]]([][]int{{1, 2}, {3, 4}}))
//	    b := tensor.Must(tensor.Matrix[int, tensor.Int[int]]([][]int{{5, 7}, {6, 8}}))
//
//	    sum := tensor.Must(tensor.Add(a, b))
//	    prod := tensor.Must(tensor.MatMul(a, b))
//	    rref := tensor.Must(tensor.ReducedRowEchelon(a, tensor.Safe()))
//	}
//
// # Element-wise Operations
//
// Add, Sub, Mul and Div run procedures specialized for the operand rank and
// cached per element type, so the first call for a rank is slower than the
// rest. Pass Parallel() to split the outermost axis across goroutines.
//
// # Echelon Forms
//
// RowEchelon, RowEchelonLeadingOnes, ReducedRowEchelon and Determinant
// divide as they go unless Safe() is passed, in which case every entry keeps
// a numerator and denominator until the end. Safe() matters for integer
// elements, where intermediate division truncates.
//
// # Memory Management
//
// View and Transpose share the buffer of their source. Every other
// operation returns a fresh contiguous tensor.
//
// # Build Tags
//
// Building with -tags gentensor_trusted removes shape and bounds checks from
// indexing and element-wise operations.
package tensor
