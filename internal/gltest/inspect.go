// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gltest

import (
	"testing"

	"github.com/gogpu/gldemo/render"
	"golang.org/x/mobile/gl"
)

// Live counts the GL objects that exist in the context.
type Live struct {
	Shaders      int
	Programs     int
	Buffers      int
	Textures     int
	Framebuffers int
}

// Zero reports whether no object is alive.
func (l Live) Zero() bool {
	return l == Live{}
}

// Live returns the number of objects of each kind not yet deleted.
func (c *Context) Live() Live {
	return Live{
		Shaders:      len(c.shaders),
		Programs:     len(c.programs),
		Buffers:      len(c.buffers),
		Textures:     len(c.textures),
		Framebuffers: len(c.framebuffers),
	}
}

// BufferContents returns the contents of buffer b, or nil if it does not exist.
func (c *Context) BufferContents(b gl.Buffer) []byte {
	return c.buffers[b.Value]
}

// Bound returns the buffer bound to target.
func (c *Context) Bound(target gl.Enum) gl.Buffer {
	return c.bound[target]
}

// BoundTexture returns the texture bound to TEXTURE_2D on unit.
func (c *Context) BoundTexture(unit gl.Enum) gl.Texture {
	return c.boundTex[unit]
}

// BoundFramebuffer returns the framebuffer bound to FRAMEBUFFER.
func (c *Context) BoundFramebuffer() gl.Framebuffer {
	return c.boundFB
}

// Texture returns the tracked storage of texture t.
func (c *Context) Texture(t gl.Texture) (*TextureImage, bool) {
	img, ok := c.textures[t.Value]
	return img, ok
}

// Attrib returns the state of vertex attribute a.
func (c *Context) Attrib(a gl.Attrib) AttribPointer {
	if p, ok := c.attribs[a.Value]; ok {
		return *p
	}
	return AttribPointer{}
}

// UniformValue returns the last value stored at location u.
func (c *Context) UniformValue(u gl.Uniform) any {
	return c.uniforms[u.Value]
}

// Current returns the program in use.
func (c *Context) Current() gl.Program {
	return c.current
}

// Draws returns every draw call issued so far.
func (c *Context) Draws() []Draw {
	return c.draws
}

// ViewportRect returns the last viewport rectangle.
func (c *Context) ViewportRect() [4]int {
	return c.viewport
}

// ClearColorValue returns the last clear color.
func (c *Context) ClearColorValue() [4]float32 {
	return c.clearColor
}

// Clears returns the number of Clear calls.
func (c *Context) Clears() int {
	return c.clears
}

// IsDisabled reports whether cap was disabled.
func (c *Context) IsDisabled(cap gl.Enum) bool {
	return c.disabled[cap]
}

// Count returns how many times the named method was called.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls to the named method.
func (c *Context) Find(name string) []Call {
	var out []Call
	for _, call := range c.Calls {
		if call.Name == name {
			out = append(out, call)
		}
	}
	return out
}

// ResetCalls clears the call and draw logs, keeping all GL state.
func (c *Context) ResetCalls() {
	c.Calls = nil
	c.draws = nil
}

// NoError fails the test if a GL error is pending, draining the queue the
// same way render.CheckError does at runtime.
func NoError(tb testing.TB, c *Context, op string) {
	tb.Helper()
	if err := render.CheckError(c, op); err != nil {
		tb.Fatalf("%v\ncalls: %v", err, c.Calls)
	}
}
