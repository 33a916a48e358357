package element

import "errors"

// Sentinel errors. Match with errors.Is; element types may wrap them with
// context.
var (
	// ErrDivisionByZero is returned by exact element types when the divisor
	// is their additive identity.
	ErrDivisionByZero = errors.New("element: division by zero")

	// ErrUnsupportedOperation is returned when an element type has no working
	// implementation of the requested capability (e.g. Divide on bytes).
	ErrUnsupportedOperation = errors.New("element: unsupported operation")

	// ErrNotImplemented marks capabilities that are intentionally absent,
	// such as serializing the internal Fraction representation.
	ErrNotImplemented = errors.New("element: not implemented")

	// ErrMalformedData is returned by Deserialize on truncated or invalid input.
	ErrMalformedData = errors.New("element: malformed data")
)
