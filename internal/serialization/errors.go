package serialization

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: data may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrTruncated          = errors.New("unexpected end of data")
	ErrTrailingData       = errors.New("unexpected data after checksum")
	ErrRankTooLarge       = errors.New("rank exceeds maximum")
	ErrElementTooLarge    = errors.New("element payload exceeds maximum size")
	ErrExtentTooLarge     = errors.New("extent does not fit the format or the data")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Err     error // One of the sentinel errors above
	Element int   // Element position in row-major order, or -1
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("%v: element %d: %s", e.Err, e.Element, e.Details)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Details)
}

// Unwrap returns the sentinel error, so errors.Is matches it.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
