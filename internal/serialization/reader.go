package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

// Unmarshal decodes a tensor produced by Marshal. The checksum is verified
// before any element is decoded.
func Unmarshal[T any, O element.Ops[T]](data []byte) (*tensor.Tensor[T, O], error) {
	body, err := ValidateChecksum(data)
	if err != nil {
		return nil, err
	}

	if string(body[:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint32(body[4:8]); v != FormatVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", v, FormatVersion)
	}
	rank := int(binary.LittleEndian.Uint32(body[8:12]))
	if rank > MaxRank {
		return nil, &ValidationError{Err: ErrRankTooLarge, Element: -1, Details: fmt.Sprintf("got %d, max %d", rank, MaxRank)}
	}
	pos := prefixSize
	if len(body)-pos < 4*rank {
		return nil, &ValidationError{Err: ErrTruncated, Element: -1, Details: "shape"}
	}
	shape := make(tensor.Shape, rank)
	for i := range shape {
		shape[i] = int(binary.LittleEndian.Uint32(body[pos:]))
		pos += 4
	}
	if err := validateShape(shape, len(body)-pos); err != nil {
		return nil, err
	}
	if err := validateElementType[T, O](); err != nil {
		return nil, err
	}

	res, err := tensor.Empty[T, O](shape)
	if err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}

	var o O
	elems := res.Data()
	for i := range elems {
		if len(body)-pos < lengthSize {
			return nil, &ValidationError{Err: ErrTruncated, Element: i, Details: "missing length"}
		}
		size := int(binary.LittleEndian.Uint32(body[pos:]))
		pos += lengthSize
		if err := validatePayload(i, size, len(body)-pos); err != nil {
			return nil, err
		}
		v, err := o.Deserialize(body[pos : pos+size])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to deserialize element %d", i)
		}
		elems[i] = v
		pos += size
	}
	if pos != len(body) {
		return nil, errors.Wrapf(ErrTrailingData, "%d bytes", len(body)-pos)
	}
	return res, nil
}

// Decode reads r to EOF and decodes the tensor it holds.
func Decode[T any, O element.Ops[T]](r io.Reader) (*tensor.Tensor[T, O], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tensor")
	}
	return Unmarshal[T, O](data)
}

// ReadFile decodes the tensor stored at path. The file is memory-mapped for
// the duration of the call; decoded elements do not reference the mapping.
func ReadFile[T any, O element.Ops[T]](path string) (*tensor.Tensor[T, O], error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for tensor loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat file")
	}
	if stat.Size() < prefixSize+ChecksumSize {
		return nil, &ValidationError{Err: ErrTruncated, Element: -1, Details: fmt.Sprintf("file of %d bytes", stat.Size())}
	}

	data, err := mmapFile(file, stat.Size())
	if err != nil {
		return nil, errors.Wrap(err, "mmap failed")
	}
	defer func() { _ = munmapFile(data) }()

	return Unmarshal[T, O](data)
}
