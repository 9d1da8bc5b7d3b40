// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

// VertexAttribute describes one per-vertex shader input.
//
// Each attribute is stored in its own tightly packed buffer, so its stride
// is the byte size of its format and its offset is always zero.
type VertexAttribute struct {
	// Name is the attribute name in the vertex shader source.
	Name string

	// Format is the component type and count.
	Format gputypes.VertexFormat
}

// Components returns the number of float components in the attribute.
func (a VertexAttribute) Components() int {
	return Components(a.Format)
}

// Stride returns the byte distance between consecutive vertices.
func (a VertexAttribute) Stride() int {
	return Stride(a.Format)
}

// VertexLayout is the single source of truth for attribute sizes and
// strides used by a renderer. Draw code derives every VertexAttribPointer
// argument from it instead of repeating byte counts.
type VertexLayout struct {
	Attributes []VertexAttribute
}

// Names returns the attribute names, in declaration order.
func (l VertexLayout) Names() []string {
	names := make([]string, len(l.Attributes))
	for i, a := range l.Attributes {
		names[i] = a.Name
	}
	return names
}

// Attribute returns the attribute with the given name.
func (l VertexLayout) Attribute(name string) (VertexAttribute, bool) {
	for _, a := range l.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return VertexAttribute{}, false
}

// Validate checks that data holds a whole number of vertices for the
// attribute and returns the vertex count.
func (a VertexAttribute) Validate(data []float32) (int, error) {
	n := a.Components()
	if n == 0 {
		return 0, fmt.Errorf("render: attribute %q: unsupported format %v", a.Name, a.Format)
	}
	if len(data)%n != 0 {
		return 0, fmt.Errorf("render: attribute %q: %d floats is not a multiple of %d", a.Name, len(data), n)
	}
	return len(data) / n, nil
}

// Components returns the float component count of a vertex format,
// or 0 for formats the GLES2 renderers do not use.
func Components(f gputypes.VertexFormat) int {
	switch f {
	case gputypes.VertexFormatFloat32:
		return 1
	case gputypes.VertexFormatFloat32x2:
		return 2
	case gputypes.VertexFormatFloat32x3:
		return 3
	case gputypes.VertexFormatFloat32x4:
		return 4
	default:
		return 0
	}
}

// Stride returns the tightly packed byte stride of a vertex format.
func Stride(f gputypes.VertexFormat) int {
	return Components(f) * 4
}

// Pointer enables attrib and points it at the currently bound
// ARRAY_BUFFER using the attribute's format.
func Pointer(ctx Context, attrib gl.Attrib, a VertexAttribute) {
	ctx.EnableVertexAttribArray(attrib)
	ctx.VertexAttribPointer(attrib, a.Components(), gl.FLOAT, false, a.Stride(), 0)
}

// Topology converts a primitive topology to the GL draw mode.
func Topology(t gputypes.PrimitiveTopology) gl.Enum {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return gl.POINTS
	case gputypes.PrimitiveTopologyLineList:
		return gl.LINES
	case gputypes.PrimitiveTopologyLineStrip:
		return gl.LINE_STRIP
	case gputypes.PrimitiveTopologyTriangleList:
		return gl.TRIANGLES
	default:
		return gl.TRIANGLE_STRIP
	}
}

// IndexType converts an index format to the GL element type.
func IndexType(f gputypes.IndexFormat) gl.Enum {
	if f == gputypes.IndexFormatUint32 {
		return gl.UNSIGNED_INT
	}
	return gl.UNSIGNED_SHORT
}
