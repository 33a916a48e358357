package element

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// Floating is the set of builtin floating-point types.
type Floating interface {
	~float32 | ~float64
}

// Float implements Ops for floating-point numbers. Division follows IEEE 754:
// dividing by zero yields ±Inf or NaN rather than an error.
type Float[T Floating] struct{}

func (Float[T]) Add(a, b T) T      { return a + b }
func (Float[T]) Subtract(a, b T) T { return a - b }
func (Float[T]) Multiply(a, b T) T { return a * b }
func (Float[T]) Negate(a T) T      { return -a }
func (Float[T]) One() T            { return 1 }
func (Float[T]) Zero() T           { return 0 }
func (Float[T]) Copy(a T) T        { return a }
func (Float[T]) Forward(a T) T     { return a }
func (Float[T]) Equal(a, b T) bool { return a == b }
func (Float[T]) IsZero(a T) bool   { return a == 0 }

func (Float[T]) Divide(a, b T) (T, error) { return a / b, nil }

// Reduce scales num and den by the same power of two so that den lies in
// [0.5, 1). The scaling is exact, so the quotient is unchanged.
func (Float[T]) Reduce(num, den T) (T, T) {
	d := float64(den)
	if d == 0 || math.IsInf(d, 0) || math.IsNaN(d) {
		return num, den
	}
	_, e := math.Frexp(d)
	return T(math.Ldexp(float64(num), -e)), T(math.Ldexp(d, -e))
}

func (Float[T]) String(a T) string {
	return strconv.FormatFloat(float64(a), 'g', -1, int(unsafe.Sizeof(a))*8)
}

// Serialize writes the float64 bits of a in little-endian order. float32
// values widen exactly, so the encoding is lossless for both widths.
func (Float[T]) Serialize(a T) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(nil, math.Float64bits(float64(a))), nil
}

func (Float[T]) Deserialize(data []byte) (T, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("float: want 8 bytes, got %d: %w", len(data), ErrMalformedData)
	}
	return T(math.Float64frombits(binary.LittleEndian.Uint64(data))), nil
}
