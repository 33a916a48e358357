package element

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Signed is the set of builtin signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Int implements Ops for signed integers with Go's truncating division and
// wraparound on overflow.
type Int[T Signed] struct{}

func (Int[T]) Add(a, b T) T      { return a + b }
func (Int[T]) Subtract(a, b T) T { return a - b }
func (Int[T]) Multiply(a, b T) T { return a * b }
func (Int[T]) Negate(a T) T      { return -a }
func (Int[T]) One() T            { return 1 }
func (Int[T]) Zero() T           { return 0 }
func (Int[T]) Copy(a T) T        { return a }
func (Int[T]) Forward(a T) T     { return a }
func (Int[T]) Equal(a, b T) bool { return a == b }
func (Int[T]) IsZero(a T) bool   { return a == 0 }

// Divide returns a/b truncated toward zero.
func (Int[T]) Divide(a, b T) (T, error) {
	if b == 0 {
		return 0, fmt.Errorf("%d / 0: %w", int64(a), ErrDivisionByZero)
	}
	return a / b, nil
}

// Reduce divides num and den by their greatest common divisor and makes den
// positive.
func (Int[T]) Reduce(num, den T) (T, T) {
	if den == 0 {
		return num, den
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	return num / g, den / g
}

// gcd returns the non-negative greatest common divisor; b must be positive.
func gcd[T Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (Int[T]) String(a T) string {
	return strconv.FormatInt(int64(a), 10)
}

// Serialize encodes a as a zig-zag varint.
func (Int[T]) Serialize(a T) ([]byte, error) {
	return binary.AppendVarint(nil, int64(a)), nil
}

// Deserialize decodes a varint and rejects values that do not fit T.
func (Int[T]) Deserialize(data []byte) (T, error) {
	v, n := binary.Varint(data)
	if n <= 0 || n != len(data) {
		return 0, fmt.Errorf("int: bad varint of %d bytes: %w", len(data), ErrMalformedData)
	}
	if int64(T(v)) != v {
		return 0, fmt.Errorf("int: %d overflows element type: %w", v, ErrMalformedData)
	}
	return T(v), nil
}
