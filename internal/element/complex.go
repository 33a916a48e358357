package element

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// ComplexNumber is the set of builtin complex types.
type ComplexNumber interface {
	~complex64 | ~complex128
}

// Complex implements Ops for complex numbers with IEEE division semantics.
type Complex[T ComplexNumber] struct{}

func (Complex[T]) Add(a, b T) T      { return a + b }
func (Complex[T]) Subtract(a, b T) T { return a - b }
func (Complex[T]) Multiply(a, b T) T { return a * b }
func (Complex[T]) Negate(a T) T      { return -a }
func (Complex[T]) One() T            { return 1 }
func (Complex[T]) Zero() T           { return 0 }
func (Complex[T]) Copy(a T) T        { return a }
func (Complex[T]) Forward(a T) T     { return a }
func (Complex[T]) Equal(a, b T) bool { return a == b }
func (Complex[T]) IsZero(a T) bool   { return a == 0 }

func (Complex[T]) Divide(a, b T) (T, error) { return a / b, nil }

// Reduce scales num and den by the power of two that brings the larger
// component of den into [0.5, 1).
func (Complex[T]) Reduce(num, den T) (T, T) {
	d := complex128(den)
	m := max(math.Abs(real(d)), math.Abs(imag(d)))
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return num, den
	}
	_, e := math.Frexp(m)
	n := complex128(num)
	return T(complex(math.Ldexp(real(n), -e), math.Ldexp(imag(n), -e))),
		T(complex(math.Ldexp(real(d), -e), math.Ldexp(imag(d), -e)))
}

func (Complex[T]) String(a T) string {
	return strconv.FormatComplex(complex128(a), 'g', -1, int(unsafe.Sizeof(a))*8)
}

// Serialize writes the real and imaginary parts as little-endian float64 bits.
func (Complex[T]) Serialize(a T) ([]byte, error) {
	c := complex128(a)
	buf := make([]byte, 0, 16)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(real(c)))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(imag(c)))
	return buf, nil
}

func (Complex[T]) Deserialize(data []byte) (T, error) {
	if len(data) != 16 {
		return 0, fmt.Errorf("complex: want 16 bytes, got %d: %w", len(data), ErrMalformedData)
	}
	re := math.Float64frombits(binary.LittleEndian.Uint64(data[:8]))
	im := math.Float64frombits(binary.LittleEndian.Uint64(data[8:]))
	return T(complex(re, im)), nil
}
