// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// byteOrder is the order GL expects client data in. Every GLES target
// supported by x/mobile (arm, arm64, 386, amd64) is little endian.
var byteOrder = binary.LittleEndian

// Float32Bytes packs values for a vertex buffer upload.
func Float32Bytes(values ...float32) []byte {
	return f32.Bytes(byteOrder, values...)
}

// Uint16Bytes packs values for an index buffer upload.
func Uint16Bytes(values ...uint16) []byte {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		byteOrder.PutUint16(b[2*i:], v)
	}
	return b
}
