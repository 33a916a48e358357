// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"github.com/born-ml/gentensor/internal/serialization"
)

// Serialization

// Marshal encodes t in the binary .gtns format.
func Marshal[T any, O Ops[T]](t *Tensor[T, O]) ([]byte, error) {
	return serialization.Marshal(t)
}

// Unmarshal decodes data produced by Marshal.
//
// Example:
//
//	t, err := tensor.Unmarshal[int, tensor.Int[int]](data)
func Unmarshal[T any, O Ops[T]](data []byte) (*Tensor[T, O], error) {
	return serialization.Unmarshal[T, O](data)
}

// Encode writes t to w in the .gtns format.
func Encode[T any, O Ops[T]](w io.Writer, t *Tensor[T, O]) error {
	return serialization.Encode(w, t)
}

// Decode reads r to EOF and decodes the tensor it holds.
func Decode[T any, O Ops[T]](r io.Reader) (*Tensor[T, O], error) {
	return serialization.Decode[T, O](r)
}

// Save writes t to the file at path.
func Save[T any, O Ops[T]](path string, t *Tensor[T, O]) error {
	return serialization.WriteFile(path, t)
}

// Load reads a tensor saved with Save.
func Load[T any, O Ops[T]](path string) (*Tensor[T, O], error) {
	return serialization.ReadFile[T, O](path)
}
