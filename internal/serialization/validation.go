package serialization

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/gentensor/internal/element"
)

// Validation limits for resource protection.
const (
	MaxRank        = 64      // Maximum number of axes
	MaxElementSize = 1 << 30 // 1GB - maximum payload of a single element
)

// validateShape checks the decoded extents. remaining is the number of body
// bytes after the shape; every element needs at least lengthSize of them,
// which bounds the element count before anything is allocated.
func validateShape(extents []int, remaining int) error {
	if len(extents) > MaxRank {
		return &ValidationError{
			Err:     ErrRankTooLarge,
			Element: -1,
			Details: fmt.Sprintf("got %d, max %d", len(extents), MaxRank),
		}
	}
	limit := remaining / lengthSize
	n := 1
	for _, e := range extents {
		if e == 0 {
			return nil
		}
		if n > limit/e {
			return &ValidationError{
				Err:     ErrExtentTooLarge,
				Element: -1,
				Details: fmt.Sprintf("shape %v needs more than the %d bytes left", extents, remaining),
			}
		}
		n *= e
	}
	return nil
}

// validateEncodable checks that a shape fits the uint32 fields of the format.
func validateEncodable(extents []int) error {
	if len(extents) > MaxRank {
		return &ValidationError{
			Err:     ErrRankTooLarge,
			Element: -1,
			Details: fmt.Sprintf("got %d, max %d", len(extents), MaxRank),
		}
	}
	for i, e := range extents {
		if uint64(e) > math.MaxUint32 {
			return &ValidationError{
				Err:     ErrExtentTooLarge,
				Element: -1,
				Details: fmt.Sprintf("axis %d has extent %d", i, e),
			}
		}
	}
	return nil
}

// validateElementType round-trips O.Zero() through the element codec, so an
// element type without serialization fails even for an empty tensor.
func validateElementType[T any, O element.Ops[T]]() error {
	var o O
	payload, err := o.Serialize(o.Zero())
	if err != nil {
		return errors.Wrap(err, "element type cannot be serialized")
	}
	if _, err := o.Deserialize(payload); err != nil {
		return errors.Wrap(err, "element type cannot be deserialized")
	}
	return nil
}

func validatePayload(index, size, remaining int) error {
	if size > MaxElementSize {
		return &ValidationError{
			Err:     ErrElementTooLarge,
			Element: index,
			Details: fmt.Sprintf("got %d bytes, max %d", size, MaxElementSize),
		}
	}
	if size > remaining {
		return &ValidationError{
			Err:     ErrTruncated,
			Element: index,
			Details: fmt.Sprintf("payload of %d bytes, %d left", size, remaining),
		}
	}
	return nil
}
