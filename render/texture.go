// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

// TextureDescriptor describes parameters for creating a 2D texture.
// This mirrors the WebGPU GPUTextureDescriptor and GPUSamplerDescriptor
// fields that GLES2 can express.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width and Height are the texture size in pixels.
	Width  int
	Height int

	// Format is the texture pixel format. Only RGBA8Unorm is supported.
	Format gputypes.TextureFormat

	// MinFilter and MagFilter select the sampling filter.
	MinFilter gputypes.FilterMode
	MagFilter gputypes.FilterMode

	// AddressModeU and AddressModeV select the S and T wrap modes.
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
}

// Size returns the texture extent.
func (d TextureDescriptor) Size() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(d.Width),
		Height:             uint32(d.Height),
		DepthOrArrayLayers: 1,
	}
}

// ByteSize returns the number of bytes a full-size upload must carry.
func (d TextureDescriptor) ByteSize() int {
	return d.Width * d.Height * 4
}

// Texture owns a GL 2D texture object.
type Texture struct {
	ctx      Context
	handle   gl.Texture
	desc     TextureDescriptor
	released bool
}

// NewTexture creates a texture, sets its sampling parameters and allocates
// storage for the descriptor's size with an empty initial payload. The
// texture is left bound to TEXTURE_2D.
func NewTexture(ctx Context, desc TextureDescriptor) (*Texture, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, desc.Width, desc.Height)
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("render: texture %q: unsupported format %v", desc.Label, desc.Format)
	}

	handle := ctx.CreateTexture()
	ctx.BindTexture(gl.TEXTURE_2D, handle)
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(desc.MagFilter))
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(desc.MinFilter))
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(desc.AddressModeU))
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(desc.AddressModeV))
	ctx.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, desc.Width, desc.Height, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	Logger().Debug("render: texture allocated",
		"label", desc.Label,
		"texture", handle.Value,
		"width", desc.Width,
		"height", desc.Height)

	return &Texture{ctx: ctx, handle: handle, desc: desc}, nil
}

func filter(m gputypes.FilterMode) int {
	if m == gputypes.FilterModeNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrap(m gputypes.AddressMode) int {
	switch m {
	case gputypes.AddressModeClampToEdge:
		return gl.CLAMP_TO_EDGE
	case gputypes.AddressModeMirrorRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

// Handle returns the underlying GL texture.
func (t *Texture) Handle() gl.Texture {
	return t.handle
}

// Descriptor returns the descriptor the texture was created with.
func (t *Texture) Descriptor() TextureDescriptor {
	return t.desc
}

// Bind activates texture unit and binds t to TEXTURE_2D on it.
func (t *Texture) Bind(unit int) {
	if t.released {
		return
	}
	t.ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	t.ctx.BindTexture(gl.TEXTURE_2D, t.handle)
}

// Unbind clears the TEXTURE_2D binding of the active unit.
func (t *Texture) Unbind() {
	if t.released {
		return
	}
	t.ctx.BindTexture(gl.TEXTURE_2D, gl.Texture{})
}

// Upload binds t on unit and replaces its whole contents with pix, an
// RGBA8 payload of exactly Width*Height*4 bytes, at offset (0,0).
func (t *Texture) Upload(unit int, pix []byte) error {
	if t.released {
		return ErrReleased
	}
	if len(pix) != t.desc.ByteSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrTextureSize, len(pix), t.desc.ByteSize())
	}
	t.Bind(unit)
	t.ctx.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.desc.Width, t.desc.Height, gl.RGBA, gl.UNSIGNED_BYTE, pix)
	return nil
}

// Release deletes the texture object. It is safe to call more than once.
func (t *Texture) Release() {
	if t == nil || t.released {
		return
	}
	t.ctx.DeleteTexture(t.handle)
	t.released = true
	t.handle = gl.Texture{}
}
