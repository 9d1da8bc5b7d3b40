// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// ProgramDescriptor describes a vertex/fragment shader pair and the
// inputs the caller will look up after linking.
type ProgramDescriptor struct {
	// Label is an optional debug label used in log output.
	Label string

	// VertexSource and FragmentSource are GLSL ES 1.00 sources.
	VertexSource   string
	FragmentSource string

	// Attributes and Uniforms are resolved once, right after a
	// successful link, and cached for the life of the program.
	Attributes []string
	Uniforms   []string
}

// Program owns a linked GL program object.
//
// Attribute and uniform locations are resolved at link time; per-frame
// code reads them from the cache instead of querying the driver.
type Program struct {
	ctx      Context
	label    string
	handle   gl.Program
	attribs  map[string]gl.Attrib
	uniforms map[string]gl.Uniform
	released bool
}

// NewProgram compiles, links and introspects a program.
//
// Compile failures return *ShaderError and link failures *LinkError, both
// carrying the driver's info log. The shader objects are detached and
// deleted once the program is linked; on failure every object created so
// far is deleted.
func NewProgram(ctx Context, desc ProgramDescriptor) (*Program, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	vs, err := compileShader(ctx, gl.VERTEX_SHADER, "vertex", desc.VertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(ctx, gl.FRAGMENT_SHADER, "fragment", desc.FragmentSource)
	if err != nil {
		ctx.DeleteShader(vs)
		return nil, err
	}

	handle := ctx.CreateProgram()
	if handle.Value == 0 {
		ctx.DeleteShader(vs)
		ctx.DeleteShader(fs)
		return nil, fmt.Errorf("render: %s: no program object created", desc.Label)
	}

	ctx.AttachShader(handle, vs)
	ctx.AttachShader(handle, fs)
	ctx.LinkProgram(handle)

	// Flag shaders for deletion; GL keeps them alive while attached.
	ctx.DetachShader(handle, vs)
	ctx.DetachShader(handle, fs)
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)

	if ctx.GetProgrami(handle, gl.LINK_STATUS) == 0 {
		log := ctx.GetProgramInfoLog(handle)
		ctx.DeleteProgram(handle)
		return nil, &LinkError{Log: log}
	}

	p := &Program{
		ctx:      ctx,
		label:    desc.Label,
		handle:   handle,
		attribs:  make(map[string]gl.Attrib, len(desc.Attributes)),
		uniforms: make(map[string]gl.Uniform, len(desc.Uniforms)),
	}
	for _, name := range desc.Attributes {
		p.attribs[name] = ctx.GetAttribLocation(handle, name)
	}
	for _, name := range desc.Uniforms {
		p.uniforms[name] = ctx.GetUniformLocation(handle, name)
	}

	Logger().Debug("render: program linked",
		"label", desc.Label,
		"program", handle.Value,
		"attributes", len(p.attribs),
		"uniforms", len(p.uniforms))

	return p, nil
}

func compileShader(ctx Context, ty gl.Enum, stage, src string) (gl.Shader, error) {
	s := ctx.CreateShader(ty)
	if s.Value == 0 {
		return gl.Shader{}, &ShaderError{Stage: stage, Log: "no shader object created"}
	}
	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	if ctx.GetShaderi(s, gl.COMPILE_STATUS) == 0 {
		log := ctx.GetShaderInfoLog(s)
		ctx.DeleteShader(s)
		return gl.Shader{}, &ShaderError{Stage: stage, Log: log}
	}
	return s, nil
}

// Handle returns the underlying GL program.
func (p *Program) Handle() gl.Program {
	return p.handle
}

// Label returns the debug label.
func (p *Program) Label() string {
	return p.label
}

// Use makes p the current program.
func (p *Program) Use() {
	if p.released {
		return
	}
	p.ctx.UseProgram(p.handle)
}

// Attrib returns the cached location of an attribute. Names not listed in
// the descriptor are resolved on first use and cached.
func (p *Program) Attrib(name string) gl.Attrib {
	a, ok := p.attribs[name]
	if !ok && !p.released {
		a = p.ctx.GetAttribLocation(p.handle, name)
		p.attribs[name] = a
	}
	return a
}

// Uniform returns the cached location of a uniform. Names not listed in
// the descriptor are resolved on first use and cached.
func (p *Program) Uniform(name string) gl.Uniform {
	u, ok := p.uniforms[name]
	if !ok && !p.released {
		u = p.ctx.GetUniformLocation(p.handle, name)
		p.uniforms[name] = u
	}
	return u
}

// Released reports whether Release has been called.
func (p *Program) Released() bool {
	return p.released
}

// Release deletes the program object. It is safe to call more than once.
func (p *Program) Release() {
	if p == nil || p.released {
		return
	}
	p.ctx.DeleteProgram(p.handle)
	p.released = true
	p.handle = gl.Program{}
}
