package serialization

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

// Marshal encodes t in the .gtns format.
func Marshal[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) ([]byte, error) {
	shape := t.Shape()
	if err := validateEncodable(shape); err != nil {
		return nil, err
	}
	if err := validateElementType[T, O](); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	writeUint32(&buf, FormatVersion)
	writeUint32(&buf, len(shape))
	for _, e := range shape {
		writeUint32(&buf, e)
	}

	var o O
	i := 0
	for _, v := range t.All() {
		payload, err := o.Serialize(v)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to serialize element %d", i)
		}
		if len(payload) > MaxElementSize {
			return nil, &ValidationError{Err: ErrElementTooLarge, Element: i, Details: "serialized payload too large"}
		}
		writeUint32(&buf, len(payload))
		buf.Write(payload)
		i++
	}

	sum := ComputeChecksum(buf.Bytes())
	buf.Write(sum[:])
	return buf.Bytes(), nil
}

// Encode writes t to w in the .gtns format. Nothing is written if an
// element fails to serialize.
func Encode[T any, O element.Ops[T]](w io.Writer, t *tensor.Tensor[T, O]) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write tensor")
	}
	return nil
}

// WriteFile encodes t into the file at path, replacing it if it exists.
func WriteFile[T any, O element.Ops[T]](path string, t *tensor.Tensor[T, O]) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	//nolint:gosec // G306: tensor files are not secrets
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write file")
	}
	return nil
}

func writeUint32(buf *bytes.Buffer, v int) {
	buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(v))) //nolint:gosec // G115: validated by validateEncodable
}
