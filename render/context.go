// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "golang.org/x/mobile/gl"

// Context is the OpenGL ES 2.0 surface used by the demo renderers.
//
// Every method carries the exact signature of the corresponding
// golang.org/x/mobile/gl.Context method, so the draw context handed out by
// the host (lifecycle.Event.DrawContext) satisfies Context directly. Tests
// substitute a recording fake.
//
// Key principle: renderers RECEIVE the context from the host surface, they
// never create one.
type Context interface {
	ActiveTexture(texture gl.Enum)
	AttachShader(p gl.Program, s gl.Shader)
	BindBuffer(target gl.Enum, b gl.Buffer)
	BindFramebuffer(target gl.Enum, fb gl.Framebuffer)
	BindTexture(target gl.Enum, t gl.Texture)
	BufferData(target gl.Enum, src []byte, usage gl.Enum)
	CheckFramebufferStatus(target gl.Enum) gl.Enum
	Clear(mask gl.Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s gl.Shader)
	CreateBuffer() gl.Buffer
	CreateFramebuffer() gl.Framebuffer
	CreateProgram() gl.Program
	CreateShader(ty gl.Enum) gl.Shader
	CreateTexture() gl.Texture
	DeleteBuffer(v gl.Buffer)
	DeleteFramebuffer(v gl.Framebuffer)
	DeleteProgram(p gl.Program)
	DeleteShader(s gl.Shader)
	DeleteTexture(v gl.Texture)
	DetachShader(p gl.Program, s gl.Shader)
	Disable(cap gl.Enum)
	DisableVertexAttribArray(a gl.Attrib)
	DrawArrays(mode gl.Enum, first, count int)
	DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int)
	EnableVertexAttribArray(a gl.Attrib)
	FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int)
	GetAttribLocation(p gl.Program, name string) gl.Attrib
	GetError() gl.Enum
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string
	GetUniformLocation(p gl.Program, name string) gl.Uniform
	LinkProgram(p gl.Program)
	ShaderSource(s gl.Shader, src string)
	TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte)
	TexParameteri(target, pname gl.Enum, param int)
	TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, data []byte)
	Uniform1i(dst gl.Uniform, v int)
	Uniform4fv(dst gl.Uniform, src []float32)
	UniformMatrix4fv(dst gl.Uniform, src []float32)
	UseProgram(p gl.Program)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}

// Compile-time check that the real x/mobile context can drive the renderers.
var _ Context = gl.Context(nil)
