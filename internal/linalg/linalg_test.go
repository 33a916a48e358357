package linalg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/parallel"
	"github.com/born-ml/gentensor/internal/tensor"
)

type intOps = element.Int[int]

func matrix(t *testing.T, rows [][]int) *tensor.Tensor[int, intOps] {
	t.Helper()
	m, err := tensor.Matrix[int, intOps](rows)
	require.NoError(t, err)
	return m
}

var configs = map[string]parallel.Config{
	"sequential": {Enabled: false},
	"parallel":   parallel.PerItem(),
	"default":    parallel.DefaultConfig(),
}

func TestMatMul(t *testing.T) {
	a := matrix(t, [][]int{{1, 2}, {3, 4}})
	b := matrix(t, [][]int{{5, 7}, {6, 8}})
	want := matrix(t, [][]int{{17, 23}, {39, 55}})

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			got, err := MatMul(a, b, cfg)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestMatMulTransposedViews(t *testing.T) {
	a, err := matrix(t, [][]int{{12, -1, 1}, {0, 1, 4}}).Transpose(0, 1)
	require.NoError(t, err)
	b, err := matrix(t, [][]int{{1, -1}, {0, 1}, {3, 0}, {0, 3}}).Transpose(0, 1)
	require.NoError(t, err)

	got, err := MatMul(a, b, parallel.PerItem())
	require.NoError(t, err)

	want := matrix(t, [][]int{
		{12, 0, 36, 0},
		{-2, 1, -3, 3},
		{-3, 4, 3, 12},
	})
	assert.True(t, want.Equal(got), "got %s", got)
}

func TestMatMulShapeErrors(t *testing.T) {
	a := matrix(t, [][]int{{1, 2, 3}})
	v := tensor.Vector[int, intOps](1, 2, 3)

	_, err := MatMul(a, a, parallel.DefaultConfig())
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
	_, err = MatMul(a, v, parallel.DefaultConfig())
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestMatMulRational(t *testing.T) {
	a, err := tensor.Matrix[*big.Rat, element.Rational]([][]*big.Rat{
		{element.NewRat(1, 2), element.NewRat(1, 3)},
	})
	require.NoError(t, err)
	b, err := tensor.Matrix[*big.Rat, element.Rational]([][]*big.Rat{
		{element.NewRat(2, 1)},
		{element.NewRat(3, 1)},
	})
	require.NoError(t, err)

	got, err := MatMul(a, b, parallel.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "2", got.AtUnchecked(0, 0).RatString())
}

func TestBatchMatMul(t *testing.T) {
	t1, err := tensor.Stack(
		matrix(t, [][]int{{1, 2}, {3, 4}}),
		matrix(t, [][]int{{5, 7}, {6, 8}}),
	)
	require.NoError(t, err)
	t2, err := tensor.Stack(
		matrix(t, [][]int{{-3, 2}, {3, 5}}),
		matrix(t, [][]int{{-3, 2}, {23, 5}}),
	)
	require.NoError(t, err)
	want, err := tensor.Stack(
		matrix(t, [][]int{{3, 12}, {3, 26}}),
		matrix(t, [][]int{{146, 45}, {166, 52}}),
	)
	require.NoError(t, err)

	got, err := BatchMatMul(t1, t2, parallel.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "got %s", got)
}

func TestBatchMatMulShapes(t *testing.T) {
	a, err := tensor.New[int, intOps](2, 3, 4, 5)
	require.NoError(t, err)
	b, err := tensor.New[int, intOps](2, 3, 5, 6)
	require.NoError(t, err)

	got, err := BatchMatMul(a, b, parallel.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 4, 6}, got.Shape())

	c, err := tensor.New[int, intOps](3, 3, 5, 6)
	require.NoError(t, err)
	_, err = BatchMatMul(a, c, parallel.DefaultConfig())
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	d, err := tensor.New[int, intOps](2, 3, 4, 6)
	require.NoError(t, err)
	_, err = BatchMatMul(a, d, parallel.DefaultConfig())
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestDot(t *testing.T) {
	d, err := Dot(tensor.Vector[int, intOps](1, 2, 3), tensor.Vector[int, intOps](-3, 5, 3))
	require.NoError(t, err)
	assert.Equal(t, 16, d)

	_, err = Dot(tensor.Vector[int, intOps](1, 2, 3), tensor.Vector[int, intOps](-3, 5))
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestCross(t *testing.T) {
	got, err := Cross(tensor.Vector[int, intOps](1, 2, 3), tensor.Vector[int, intOps](-3, 5, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{-9, -12, 11}, got.Data())

	_, err = Cross(tensor.Vector[int, intOps](1, 2), tensor.Vector[int, intOps](3, 4))
	assert.ErrorIs(t, err, element.ErrUnsupportedOperation)

	_, err = Cross(tensor.Vector[int, intOps](1, 2, 3), tensor.Vector[int, intOps](3, 4))
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestBatchCross(t *testing.T) {
	a, err := tensor.Stack(tensor.Vector[int, intOps](1, 2, 3), tensor.Vector[int, intOps](1, 0, 0))
	require.NoError(t, err)
	b, err := tensor.Stack(tensor.Vector[int, intOps](-3, 5, 3), tensor.Vector[int, intOps](0, 1, 0))
	require.NoError(t, err)

	got, err := BatchCross(a, b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, got.Shape())
	assert.Equal(t, []int{-9, -12, 11, 0, 0, 1}, got.Data())

	m, err := tensor.New[int, intOps](2, 2)
	require.NoError(t, err)
	_, err = BatchCross(m, m)
	assert.ErrorIs(t, err, element.ErrUnsupportedOperation)
	_, err = BatchCross(a, m)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}
