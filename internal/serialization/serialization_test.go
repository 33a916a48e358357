package serialization

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

type intOps = element.Int[int]

func intRange(t *testing.T, shape ...int) *tensor.Tensor[int, intOps] {
	t.Helper()
	res, err := tensor.FromFunc[int, intOps](tensor.Shape(shape), func(idx []int) int {
		v := 0
		for _, i := range idx {
			v = v*10 + i
		}
		return v - 7
	})
	require.NoError(t, err)
	return res
}

// reseal replaces the checksum trailer of data after the body was edited.
func reseal(body []byte) []byte {
	sum := ComputeChecksum(body)
	return append(bytes.Clone(body), sum[:]...)
}

func TestRoundTripInt(t *testing.T) {
	for _, shape := range [][]int{{}, {5}, {2, 3}, {2, 3, 4}, {0, 3}} {
		in := intRange(t, shape...)
		data, err := Marshal(in)
		require.NoError(t, err)

		out, err := Unmarshal[int, intOps](data)
		require.NoError(t, err, "shape %v", shape)
		assert.True(t, in.Equal(out), "shape %v: got %s", shape, out)
	}
}

func TestRoundTripFloat(t *testing.T) {
	in, err := tensor.Matrix[float64, element.Float[float64]]([][]float64{{1.5, -2.25}, {3e100, 0}})
	require.NoError(t, err)

	data, err := Marshal(in)
	require.NoError(t, err)
	out, err := Unmarshal[float64, element.Float[float64]](data)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))

	small, err := tensor.FromSlice[float32, element.Float[float32]]([]float32{0.1, 2.5}, 2)
	require.NoError(t, err)
	data, err = Marshal(small)
	require.NoError(t, err)
	back, err := Unmarshal[float32, element.Float[float32]](data)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 2.5}, back.Data())
}

func TestRoundTripComplex(t *testing.T) {
	in := tensor.Vector[complex128, element.Complex[complex128]](1+2i, -3.5i, 4)
	data, err := Marshal(in)
	require.NoError(t, err)
	out, err := Unmarshal[complex128, element.Complex[complex128]](data)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestRoundTripRational(t *testing.T) {
	in, err := tensor.FromFunc[*big.Rat, element.Rational](tensor.Shape{2, 2, 2}, func(idx []int) *big.Rat {
		return element.NewRat(int64(idx[0]-idx[1]), int64(idx[2]+2))
	})
	require.NoError(t, err)

	data, err := Marshal(in)
	require.NoError(t, err)
	out, err := Unmarshal[*big.Rat, element.Rational](data)
	require.NoError(t, err)
	assert.True(t, in.Equal(out), "got %s", out)
}

func TestRoundTripView(t *testing.T) {
	base := intRange(t, 3, 4)
	view, err := base.Transpose(0, 1)
	require.NoError(t, err)

	data, err := Marshal(view)
	require.NoError(t, err)
	out, err := Unmarshal[int, intOps](data)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 3}, out.Shape())
	assert.True(t, view.Equal(out))
}

func TestLayout(t *testing.T) {
	in := tensor.Vector[int, intOps](1, -1)
	data, err := Marshal(in)
	require.NoError(t, err)

	want := []byte("GTNS")
	want = binary.LittleEndian.AppendUint32(want, FormatVersion)
	want = binary.LittleEndian.AppendUint32(want, 1) // rank
	want = binary.LittleEndian.AppendUint32(want, 2) // extent
	want = binary.LittleEndian.AppendUint32(want, 1)
	want = append(want, 2) // zig-zag 1
	want = binary.LittleEndian.AppendUint32(want, 1)
	want = append(want, 1) // zig-zag -1
	assert.Equal(t, reseal(want), data)
}

func TestUnsupportedElements(t *testing.T) {
	bytesT := tensor.Vector[uint8, element.Byte](1, 2)
	_, err := Marshal(bytesT)
	assert.ErrorIs(t, err, element.ErrUnsupportedOperation)

	var buf bytes.Buffer
	require.Error(t, Encode(&buf, bytesT))
	assert.Zero(t, buf.Len(), "nothing may be written on failure")

	type frac = element.FractionOps[int, intOps]
	fr := tensor.Vector[element.Fraction[int], frac](element.NewFraction[int, intOps](3))
	_, err = Marshal(fr)
	assert.ErrorIs(t, err, element.ErrNotImplemented)

	data, err := Marshal(tensor.Vector[int, intOps](1))
	require.NoError(t, err)
	_, err = Unmarshal[uint8, element.Byte](data)
	assert.ErrorIs(t, err, element.ErrUnsupportedOperation)
}

func TestUnsupportedElementsWithoutData(t *testing.T) {
	noBytes, err := tensor.New[uint8, element.Byte](0)
	require.NoError(t, err)
	_, err = Marshal(noBytes)
	assert.ErrorIs(t, err, element.ErrUnsupportedOperation)

	noFractions, err := tensor.New[element.Fraction[int], element.FractionOps[int, intOps]](2, 0)
	require.NoError(t, err)
	_, err = Marshal(noFractions)
	assert.ErrorIs(t, err, element.ErrNotImplemented)

	data, err := Marshal(intRange(t, 0))
	require.NoError(t, err)
	_, err = Unmarshal[uint8, element.Byte](data)
	assert.ErrorIs(t, err, element.ErrUnsupportedOperation)
}

func TestCorruption(t *testing.T) {
	data, err := Marshal(intRange(t, 2, 3))
	require.NoError(t, err)

	for _, pos := range []int{0, 5, 13, len(data) / 2, len(data) - 1} {
		bad := bytes.Clone(data)
		bad[pos] ^= 0x40
		_, err := Unmarshal[int, intOps](bad)
		assert.ErrorIs(t, err, ErrChecksumMismatch, "flipped byte %d", pos)
	}
}

func TestHeaderErrors(t *testing.T) {
	data, err := Marshal(intRange(t, 2, 2))
	require.NoError(t, err)
	body := data[:len(data)-ChecksumSize]

	badMagic := bytes.Clone(body)
	copy(badMagic, "BORN")
	_, err = Unmarshal[int, intOps](reseal(badMagic))
	assert.ErrorIs(t, err, ErrInvalidMagic)

	badVersion := bytes.Clone(body)
	binary.LittleEndian.PutUint32(badVersion[4:], 9)
	_, err = Unmarshal[int, intOps](reseal(badVersion))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	bigRank := bytes.Clone(body)
	binary.LittleEndian.PutUint32(bigRank[8:], MaxRank+1)
	_, err = Unmarshal[int, intOps](reseal(bigRank))
	assert.ErrorIs(t, err, ErrRankTooLarge)

	hugeShape := bytes.Clone(body)
	binary.LittleEndian.PutUint32(hugeShape[12:], 1<<30)
	_, err = Unmarshal[int, intOps](reseal(hugeShape))
	assert.ErrorIs(t, err, ErrExtentTooLarge)

	trailing := append(bytes.Clone(body), 0xff)
	_, err = Unmarshal[int, intOps](reseal(trailing))
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = Unmarshal[int, intOps](body[:10])
	assert.ErrorIs(t, err, ErrTruncated)

	cut := body[:len(body)-1]
	_, err = Unmarshal[int, intOps](reseal(cut))
	assert.ErrorIs(t, err, ErrTruncated)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 3, verr.Element)
}

func TestEncodeDecode(t *testing.T) {
	in := intRange(t, 3, 2)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))

	out, err := Decode[int, intOps](&buf)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m"+FileExtension)
	in, err := tensor.Matrix[*big.Rat, element.Rational]([][]*big.Rat{
		{element.NewRat(1, 3), element.NewRat(-2, 7)},
	})
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, in))
	out, err := ReadFile[*big.Rat, element.Rational](path)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))

	empty := filepath.Join(t.TempDir(), "empty"+FileExtension)
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = ReadFile[int, intOps](empty)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = ReadFile[int, intOps](filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
