package element

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T any, O Ops[T]](t *testing.T, v T) {
	t.Helper()
	var o O
	data, err := o.Serialize(v)
	require.NoError(t, err)
	got, err := o.Deserialize(data)
	require.NoError(t, err)
	assert.True(t, o.Equal(v, got), "round trip of %s gave %s", o.String(v), o.String(got))
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 300, math.MaxInt64, math.MinInt64} {
		roundTrip[int, Int[int]](t, v)
	}
	for _, v := range []int8{0, 127, -128} {
		roundTrip[int8, Int[int8]](t, v)
	}
	for _, v := range []float32{3.5, 4, -5.1, 6.4} {
		roundTrip[float32, Float[float32]](t, v)
	}
	for _, v := range []float64{3.5, 4, -5.1, 6.4, math.Inf(-1)} {
		roundTrip[float64, Float[float64]](t, v)
	}
	for _, v := range []complex128{complex(1, 0), complex(-4, 2.5)} {
		roundTrip[complex128, Complex[complex128]](t, v)
	}
	roundTrip[complex64, Complex[complex64]](t, complex64(complex(1.5, -2)))
	roundTrip[*big.Rat, Rational](t, big.NewRat(-7, 3))
}

func TestIntDeserializeRejectsOverflow(t *testing.T) {
	data, err := Int[int64]{}.Serialize(1000)
	require.NoError(t, err)

	_, err = Int[int8]{}.Deserialize(data)
	assert.ErrorIs(t, err, ErrMalformedData)

	_, err = Int[int64]{}.Deserialize(append(data, 0))
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestFloatDeserializeLength(t *testing.T) {
	_, err := Float[float64]{}.Deserialize([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrMalformedData)

	_, err = Complex[complex128]{}.Deserialize(make([]byte, 8))
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestDivide(t *testing.T) {
	q, err := Int[int]{}.Divide(7, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, q)

	_, err = Int[int]{}.Divide(7, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	f, err := Float[float64]{}.Divide(1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	_, err = Rational{}.Divide(big.NewRat(1, 2), new(big.Rat))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	r, err := Rational{}.Divide(big.NewRat(1, 2), big.NewRat(3, 4))
	require.NoError(t, err)
	assert.Equal(t, "2/3", r.RatString())
}

func TestByteUnsupported(t *testing.T) {
	var o Byte
	assert.Equal(t, uint8(4), o.Add(250, 10), "byte addition wraps")

	_, err := o.Divide(4, 2)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = o.Serialize(4)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = o.Deserialize([]byte{4})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestRationalDoesNotAlias(t *testing.T) {
	var o Rational
	a := big.NewRat(1, 2)
	sum := o.Add(a, a)
	cp := o.Copy(a)
	a.SetInt64(5)

	assert.Equal(t, "1", sum.RatString())
	assert.Equal(t, "1/2", cp.RatString())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "-12", Int[int32]{}.String(-12))
	assert.Equal(t, "3.3", Float[float32]{}.String(3.3))
	assert.Equal(t, "(1+2i)", Complex[complex128]{}.String(complex(1, 2)))
	assert.Equal(t, "-7/3", Rational{}.String(big.NewRat(-7, 3)))
}

type intFrac = FractionOps[int, Int[int]]

func frac(num, den int) Fraction[int] { return Fraction[int]{Num: num, Den: den} }

func TestFractionArithmetic(t *testing.T) {
	var o intFrac

	tests := []struct {
		name string
		got  Fraction[int]
		want Fraction[int]
	}{
		{"add", o.Add(frac(1, 2), frac(1, 3)), frac(5, 6)},
		{"subtract", o.Subtract(frac(1, 2), frac(1, 3)), frac(1, 6)},
		{"multiply", o.Multiply(frac(2, 3), frac(3, 4)), frac(1, 2)},
		{"negate", o.Negate(frac(2, 3)), frac(-2, 3)},
		{"one", o.One(), frac(1, 1)},
		{"zero", o.Zero(), frac(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	q, err := o.Divide(frac(1, 2), frac(3, 4))
	require.NoError(t, err)
	assert.Equal(t, frac(2, 3), q)
}

func TestFractionDefersDivision(t *testing.T) {
	var o intFrac

	// 1/3 + 1/3 + 1/3 is exactly one even though int division would give 0.
	third := frac(1, 3)
	sum := o.Add(o.Add(third, third), third)
	v, err := Collapse[int, Int[int]](sum)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Zero divisors are only detected when collapsing.
	q, err := o.Divide(frac(1, 1), frac(0, 1))
	require.NoError(t, err)
	_, err = Collapse[int, Int[int]](q)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestReduce(t *testing.T) {
	n, d := Int[int]{}.Reduce(6, -4)
	assert.Equal(t, []int{-3, 2}, []int{n, d})
	n, d = Int[int]{}.Reduce(0, 5)
	assert.Equal(t, []int{0, 1}, []int{n, d})
	n, d = Int[int]{}.Reduce(3, 0)
	assert.Equal(t, []int{3, 0}, []int{n, d})

	fn, fd := Float[float64]{}.Reduce(3, 8)
	assert.Equal(t, []float64{0.1875, 0.5}, []float64{fn, fd})
	fn, fd = Float[float64]{}.Reduce(1, 0)
	assert.Equal(t, []float64{1, 0}, []float64{fn, fd})

	cn, cd := Complex[complex128]{}.Reduce(complex(3, 1), complex(0, -4))
	assert.Equal(t, []complex128{complex(0.375, 0.125), complex(0, -0.5)}, []complex128{cn, cd})

	rn, rd := Rational{}.Reduce(big.NewRat(3, 4), big.NewRat(-1, 2))
	assert.Equal(t, "-3/2", rn.RatString())
	assert.Equal(t, "1", rd.RatString())
}

func TestFractionStaysReduced(t *testing.T) {
	var o intFrac

	// Without reduction the denominator would reach 2^64 and wrap to zero.
	half := frac(1, 2)
	sum := o.Zero()
	for range 64 {
		sum = o.Add(sum, half)
	}
	assert.Equal(t, frac(32, 1), sum)

	p := o.One()
	for range 40 {
		p = o.Multiply(p, frac(3, 7))
		p = o.Multiply(p, frac(7, 3))
	}
	assert.Equal(t, frac(1, 1), p)

	q, err := o.Divide(frac(-4, 9), frac(2, -3))
	require.NoError(t, err)
	assert.Equal(t, frac(2, 3), q)

	var fo FractionOps[float64, Float[float64]]
	f := fo.One()
	for range 2000 {
		f = fo.Multiply(f, Fraction[float64]{Num: 3, Den: 4})
		f = fo.Multiply(f, Fraction[float64]{Num: 4, Den: 3})
	}
	v, err := Collapse[float64, Float[float64]](f)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestFractionEqualityAndZero(t *testing.T) {
	var o intFrac
	assert.True(t, o.Equal(frac(1, 2), frac(2, 4)))
	assert.False(t, o.Equal(frac(1, 2), frac(2, 3)))
	assert.True(t, o.IsZero(frac(0, 7)))
	assert.Equal(t, "3 / 4", o.String(frac(3, 4)))
	assert.Equal(t, frac(5, 1), NewFraction[int, Int[int]](5))
}

func TestFractionNotSerializable(t *testing.T) {
	var o intFrac
	_, err := o.Serialize(frac(1, 2))
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = o.Deserialize([]byte{1})
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestInverse(t *testing.T) {
	inv, err := Inverse[float64, Float[float64]](4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, inv, 1e-12)

	_, err = Inverse[uint8, Byte](4)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}
