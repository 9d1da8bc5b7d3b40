// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

// Buffer owns a GL buffer object holding immutable data uploaded once.
type Buffer struct {
	ctx      Context
	handle   gl.Buffer
	target   gl.Enum
	size     int
	released bool
}

// NewBuffer creates a buffer, uploads data to target with the given usage
// hint and leaves target unbound.
func NewBuffer(ctx Context, target gl.Enum, data []byte, usage gl.Enum) (*Buffer, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if len(data) == 0 {
		return nil, errors.New("render: empty buffer data")
	}

	handle := ctx.CreateBuffer()
	ctx.BindBuffer(target, handle)
	ctx.BufferData(target, data, usage)
	ctx.BindBuffer(target, gl.Buffer{})

	Logger().Debug("render: buffer uploaded",
		"buffer", handle.Value,
		"target", uint32(target),
		"bytes", len(data))

	return &Buffer{ctx: ctx, handle: handle, target: target, size: len(data)}, nil
}

// NewVertexBuffer uploads float32 vertex data to an ARRAY_BUFFER.
func NewVertexBuffer(ctx Context, data []float32) (*Buffer, error) {
	return NewBuffer(ctx, gl.ARRAY_BUFFER, Float32Bytes(data...), gl.STATIC_DRAW)
}

// Handle returns the underlying GL buffer.
func (b *Buffer) Handle() gl.Buffer {
	return b.handle
}

// Len returns the size of the uploaded data in bytes.
func (b *Buffer) Len() int {
	return b.size
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	if b.released {
		return
	}
	b.ctx.BindBuffer(b.target, b.handle)
}

// Unbind clears the buffer's target binding.
func (b *Buffer) Unbind() {
	if b.released {
		return
	}
	b.ctx.BindBuffer(b.target, gl.Buffer{})
}

// Release deletes the buffer object. It is safe to call more than once.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	b.ctx.DeleteBuffer(b.handle)
	b.released = true
	b.handle = gl.Buffer{}
}

// IndexBuffer is an ELEMENT_ARRAY_BUFFER that remembers its element type
// and count so draw calls never repeat them.
type IndexBuffer struct {
	*Buffer
	indices []uint16
	format  gputypes.IndexFormat
}

// NewIndexBuffer uploads 16-bit indices with a static usage hint.
func NewIndexBuffer(ctx Context, indices []uint16) (*IndexBuffer, error) {
	buf, err := NewBuffer(ctx, gl.ELEMENT_ARRAY_BUFFER, Uint16Bytes(indices...), gl.STATIC_DRAW)
	if err != nil {
		return nil, err
	}
	return &IndexBuffer{
		Buffer:  buf,
		indices: append([]uint16(nil), indices...),
		format:  gputypes.IndexFormatUint16,
	}, nil
}

// Count returns the number of indices.
func (b *IndexBuffer) Count() int {
	return len(b.indices)
}

// Indices returns a copy of the uploaded indices.
func (b *IndexBuffer) Indices() []uint16 {
	return append([]uint16(nil), b.indices...)
}

// Format returns the index element format.
func (b *IndexBuffer) Format() gputypes.IndexFormat {
	return b.format
}

// Draw binds the buffer, issues an indexed draw of every index with the
// given topology and unbinds it again.
func (b *IndexBuffer) Draw(topology gputypes.PrimitiveTopology) {
	if b.released {
		return
	}
	b.Bind()
	b.ctx.DrawElements(Topology(topology), b.Count(), IndexType(b.format), 0)
	b.Unbind()
}

// Release deletes the element buffer. It is safe to call more than once,
// or on a nil *IndexBuffer.
func (b *IndexBuffer) Release() {
	if b == nil {
		return
	}
	b.Buffer.Release()
}
