package loops

import (
	"fmt"
	"strconv"

	"github.com/born-ml/gentensor/internal/element"
)

// Kind selects the element operation a procedure applies.
type Kind int

// Supported binary operation kinds.
const (
	Addition Kind = iota
	Subtraction
	Multiplication
	Division
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Addition:
		return "addition"
	case Subtraction:
		return "subtraction"
	case Multiplication:
		return "multiplication"
	case Division:
		return "division"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// binaryFunc is an element operation lifted to a common fallible signature.
type binaryFunc[T any] func(a, b T) (T, error)

// binary maps a kind onto the matching method of O.
func binary[T any, O element.Ops[T]](k Kind) (binaryFunc[T], error) {
	var o O
	switch k {
	case Addition:
		return func(a, b T) (T, error) { return o.Add(a, b), nil }, nil
	case Subtraction:
		return func(a, b T) (T, error) { return o.Subtract(a, b), nil }, nil
	case Multiplication:
		return func(a, b T) (T, error) { return o.Multiply(a, b), nil }, nil
	case Division:
		return o.Divide, nil
	default:
		return nil, fmt.Errorf("loops: %s: %w", k, element.ErrUnsupportedOperation)
	}
}
