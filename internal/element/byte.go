package element

import (
	"fmt"
	"strconv"
)

// Byte implements Ops for raw uint8 values. Arithmetic wraps modulo 256;
// division and serialization are not supported and fail with
// ErrUnsupportedOperation.
type Byte struct{}

func (Byte) Add(a, b uint8) uint8      { return a + b }
func (Byte) Subtract(a, b uint8) uint8 { return a - b }
func (Byte) Multiply(a, b uint8) uint8 { return a * b }
func (Byte) Negate(a uint8) uint8      { return -a }
func (Byte) One() uint8                { return 1 }
func (Byte) Zero() uint8               { return 0 }
func (Byte) Copy(a uint8) uint8        { return a }
func (Byte) Forward(a uint8) uint8     { return a }
func (Byte) Equal(a, b uint8) bool     { return a == b }
func (Byte) IsZero(a uint8) bool       { return a == 0 }
func (Byte) String(a uint8) string     { return strconv.Itoa(int(a)) }

func (Byte) Divide(_, _ uint8) (uint8, error) {
	return 0, fmt.Errorf("byte divide: %w", ErrUnsupportedOperation)
}

func (Byte) Serialize(uint8) ([]byte, error) {
	return nil, fmt.Errorf("byte serialize: %w", ErrUnsupportedOperation)
}

func (Byte) Deserialize([]byte) (uint8, error) {
	return 0, fmt.Errorf("byte deserialize: %w", ErrUnsupportedOperation)
}
