package tensor

import "errors"

// Sentinel errors for storage-level failures.
var (
	// ErrInvalidShape reports a malformed shape, a shape mismatch between
	// operands, or the wrong rank for a rank-specific operation.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrIndexOutOfBounds reports a multi-index outside the tensor extents.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")
)
