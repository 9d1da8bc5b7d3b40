// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"golang.org/x/mobile/gl"
)

// Package errors for the GL resource layer.
var (
	// ErrNilContext is returned when a resource is created without a context.
	ErrNilContext = errors.New("render: nil context")

	// ErrTextureSize is returned when an upload payload does not cover the
	// full texture (width*height*4 bytes).
	ErrTextureSize = errors.New("render: payload does not match texture size")

	// ErrInvalidDimensions is returned when a texture is described with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")

	// ErrReleased is returned when a released handle is used.
	ErrReleased = errors.New("render: resource released")
)

// ShaderError reports a shader that failed to compile.
type ShaderError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("render: %s shader compile failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "render: program link failed: " + e.Log
}

// FramebufferError reports an incomplete framebuffer.
type FramebufferError struct {
	Status gl.Enum
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("render: framebuffer incomplete (status 0x%04x)", uint32(e.Status))
}

// GLError reports a non-zero code from glGetError after an operation.
type GLError struct {
	Op   string
	Code gl.Enum
}

func (e *GLError) Error() string {
	return fmt.Sprintf("render: %s: %s (0x%04x)", e.Op, errorName(e.Code), uint32(e.Code))
}

func errorName(code gl.Enum) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown GL error"
	}
}

// CheckError drains the GL error queue and returns the first error seen,
// or nil when the queue holds GL_NO_ERROR.
func CheckError(ctx Context, op string) error {
	var first error
	// The queue holds at most one flag per error kind.
	for range 8 {
		code := ctx.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == nil {
			first = &GLError{Op: op, Code: code}
		}
	}
	return first
}
