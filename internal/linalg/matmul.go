// Package linalg provides matrix and vector products over any element type.
package linalg

import (
	"fmt"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/parallel"
	"github.com/born-ml/gentensor/internal/tensor"
)

// MatMul performs matrix multiplication: [M, K] @ [K, N] -> [M, N].
// Output cells are computed in parallel according to cfg.
func MatMul[T any, O element.Ops[T]](a, b *tensor.Tensor[T, O], cfg parallel.Config) (*tensor.Tensor[T, O], error) {
	if !a.IsMatrix() || !b.IsMatrix() {
		return nil, fmt.Errorf("matmul: both operands must be matrices, got [%v] and [%v]: %w", a.Shape(), b.Shape(), tensor.ErrInvalidShape)
	}
	m, k := a.Shape()[0], a.Shape()[1]
	if b.Shape()[0] != k {
		return nil, fmt.Errorf("matmul: inner dimension mismatch: %d vs %d: %w", k, b.Shape()[0], tensor.ErrInvalidShape)
	}
	n := b.Shape()[1]

	res, err := tensor.Empty[T, O](tensor.Shape{m, n})
	if err != nil {
		return nil, err
	}
	matmulInto(res, a, b, cfg)
	return res, nil
}

// matmulInto writes a @ b into dst. Shapes must already agree; dst may be
// a view.
func matmulInto[T any, O element.Ops[T]](dst, a, b *tensor.Tensor[T, O], cfg parallel.Config) {
	var o O
	ad, bd, rd := a.Data(), b.Data(), dst.Data()
	as, bs, rs := a.Strides(), b.Strides(), dst.Strides()
	ao, bo, ro := a.Offset(), b.Offset(), dst.Offset()
	k := a.Shape()[1]

	parallel.ForBatch(dst.Shape()[0], dst.Shape()[1], func(r, c int) {
		sum := o.Zero()
		for i := 0; i < k; i++ {
			x := ad[ao+r*as[0]+i*as[1]]
			y := bd[bo+i*bs[0]+c*bs[1]]
			sum = o.Add(sum, o.Multiply(x, y))
		}
		rd[ro+r*rs[0]+c*rs[1]] = sum
	}, cfg)
}

// BatchMatMul multiplies every pair of trailing matrices.
//
// For 3D: [B, M, K] @ [B, K, N] -> [B, M, N]
// For 4D: [B, H, M, K] @ [B, H, K, N] -> [B, H, M, N]
//
// All leading dimensions must match. Rank 2 operands behave like MatMul.
func BatchMatMul[T any, O element.Ops[T]](a, b *tensor.Tensor[T, O], cfg parallel.Config) (*tensor.Tensor[T, O], error) {
	aShape, bShape := a.Shape(), b.Shape()
	ndim := len(aShape)
	if ndim < 2 || len(bShape) != ndim {
		return nil, fmt.Errorf("batch matmul: shapes [%v] and [%v]: %w", aShape, bShape, tensor.ErrInvalidShape)
	}
	if !aShape[:ndim-2].Equal(bShape[:ndim-2]) {
		return nil, fmt.Errorf("batch matmul: batch dimensions [%v] and [%v] differ: %w", aShape[:ndim-2], bShape[:ndim-2], tensor.ErrInvalidShape)
	}
	m, k, n := aShape[ndim-2], aShape[ndim-1], bShape[ndim-1]
	if bShape[ndim-2] != k {
		return nil, fmt.Errorf("batch matmul: inner dimension mismatch: %d vs %d: %w", k, bShape[ndim-2], tensor.ErrInvalidShape)
	}

	outShape := append(aShape[:ndim-2].Clone(), m, n)
	res, err := tensor.Empty[T, O](outShape)
	if err != nil {
		return nil, err
	}
	for idx := range a.Leading(2) {
		av, _ := a.View(idx...)
		bv, _ := b.View(idx...)
		dst, _ := res.View(idx...)
		matmulInto(dst, av, bv, cfg)
	}
	return res, nil
}
