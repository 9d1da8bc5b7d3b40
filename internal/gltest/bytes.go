// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gltest

import (
	"encoding/binary"
	"math"
)

// DecodeUint16 unpacks an index buffer payload written by
// render.Uint16Bytes.
func DecodeUint16(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return out
}

// DecodeFloat32 unpacks a vertex buffer payload written by
// render.Float32Bytes.
func DecodeFloat32(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out
}
