// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

// Framebuffer is an offscreen render target: a GL framebuffer object with
// one texture as its color attachment.
//
// Example:
//
//	tex, _ := render.NewTexture(ctx, desc)
//	fb, err := render.NewFramebuffer(ctx, tex)
//	if err != nil {
//	    return err // *FramebufferError when the driver rejects tex
//	}
//	fb.Bind()
//	// draw into tex
//	fb.Unbind()
type Framebuffer struct {
	ctx      Context
	handle   gl.Framebuffer
	color    *Texture
	released bool
}

// NewFramebuffer creates a framebuffer with color attached to
// COLOR_ATTACHMENT0 and checks that it is complete. An incomplete
// framebuffer is deleted and reported as *FramebufferError. The default
// framebuffer is bound again on return.
func NewFramebuffer(ctx Context, color *Texture) (*Framebuffer, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if color == nil || color.released {
		return nil, ErrReleased
	}

	handle := ctx.CreateFramebuffer()
	ctx.BindFramebuffer(gl.FRAMEBUFFER, handle)
	ctx.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color.handle, 0)
	status := ctx.CheckFramebufferStatus(gl.FRAMEBUFFER)
	ctx.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})

	if status != gl.FRAMEBUFFER_COMPLETE {
		ctx.DeleteFramebuffer(handle)
		return nil, &FramebufferError{Status: status}
	}

	Logger().Debug("render: framebuffer complete",
		"framebuffer", handle.Value,
		"texture", color.handle.Value)

	return &Framebuffer{ctx: ctx, handle: handle, color: color}, nil
}

// Handle returns the underlying GL framebuffer.
func (f *Framebuffer) Handle() gl.Framebuffer {
	return f.handle
}

// Width returns the target width in pixels.
func (f *Framebuffer) Width() int {
	return f.color.desc.Width
}

// Height returns the target height in pixels.
func (f *Framebuffer) Height() int {
	return f.color.desc.Height
}

// Format returns the pixel format of the color attachment.
func (f *Framebuffer) Format() gputypes.TextureFormat {
	return f.color.desc.Format
}

// Color returns the attached texture. The framebuffer does not own it.
func (f *Framebuffer) Color() *Texture {
	return f.color
}

// Bind makes f the draw target and sets the viewport to its full size.
func (f *Framebuffer) Bind() {
	if f.released {
		return
	}
	f.ctx.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
	f.ctx.Viewport(0, 0, f.Width(), f.Height())
}

// Unbind restores the default framebuffer. The caller restores its own
// viewport.
func (f *Framebuffer) Unbind() {
	if f.released {
		return
	}
	f.ctx.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
}

// Release deletes the framebuffer object, leaving the color texture alive.
// It is safe to call more than once.
func (f *Framebuffer) Release() {
	if f == nil || f.released {
		return
	}
	f.ctx.DeleteFramebuffer(f.handle)
	f.released = true
	f.handle = gl.Framebuffer{}
}

// ValidateAttachment checks that t can back a framebuffer color
// attachment, using a scratch framebuffer that is deleted again.
func ValidateAttachment(ctx Context, t *Texture) error {
	fb, err := NewFramebuffer(ctx, t)
	if err != nil {
		return err
	}
	fb.Release()
	return nil
}
