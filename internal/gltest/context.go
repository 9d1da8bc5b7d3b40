// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gltest provides a recording, state-tracking fake of
// render.Context for tests.
//
// The fake keeps just enough GLES2 state to catch the mistakes the
// renderers could make: uploads with nothing bound, draws from deleted
// objects, sub-image writes outside the texture, attribute pointers
// without a bound ARRAY_BUFFER. Each such misuse raises the GL error flag
// that a real driver would, so tests can check GetError after every call.
package gltest

import (
	"fmt"
	"slices"

	"golang.org/x/mobile/gl"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// TextureImage is the tracked storage of a texture object.
type TextureImage struct {
	Width, Height int
	Pix           []byte
	Params        map[gl.Enum]int
	Uploads       int
}

// AttribPointer is the tracked state of one vertex attribute.
type AttribPointer struct {
	Enabled    bool
	Size       int
	Type       gl.Enum
	Normalized bool
	Stride     int
	Offset     int
	Buffer     gl.Buffer
}

// Draw is one recorded draw call.
type Draw struct {
	Mode    gl.Enum
	First   int
	Count   int
	Type    gl.Enum // zero for DrawArrays
	Offset  int
	Indexed bool
	Program gl.Program
	Texture gl.Texture
	Indices []uint16 // element data read by an indexed draw
}

// Context is a fake render.Context.
type Context struct {
	// Calls records every method invocation in order.
	Calls []Call

	// FailCompile makes CompileShader fail for shaders of this type
	// (gl.VERTEX_SHADER or gl.FRAGMENT_SHADER). Zero means never.
	FailCompile gl.Enum

	// FailLink makes LinkProgram fail.
	FailLink bool

	// FramebufferStatus is returned by CheckFramebufferStatus; zero means
	// gl.FRAMEBUFFER_COMPLETE.
	FramebufferStatus gl.Enum

	nextID uint32
	err    gl.Enum

	shaders      map[uint32]gl.Enum // id -> type
	compiled     map[uint32]bool
	programs     map[uint32]*programState
	buffers      map[uint32][]byte
	textures     map[uint32]*TextureImage
	framebuffers map[uint32]bool

	bound      map[gl.Enum]gl.Buffer
	boundTex   map[gl.Enum]gl.Texture // by texture unit
	activeUnit gl.Enum
	boundFB    gl.Framebuffer
	current    gl.Program
	attribs    map[uint]*AttribPointer
	uniforms   map[int32]any
	disabled   map[gl.Enum]bool
	clearColor [4]float32
	viewport   [4]int
	draws      []Draw
	clears     int
}

type programState struct {
	attached map[uint32]bool
	linked   bool
	attribs  map[string]uint
	uniforms map[string]int32
}

// New returns an empty fake context.
func New() *Context {
	return &Context{
		shaders:      make(map[uint32]gl.Enum),
		compiled:     make(map[uint32]bool),
		programs:     make(map[uint32]*programState),
		buffers:      make(map[uint32][]byte),
		textures:     make(map[uint32]*TextureImage),
		framebuffers: make(map[uint32]bool),
		bound:        make(map[gl.Enum]gl.Buffer),
		boundTex:     make(map[gl.Enum]gl.Texture),
		activeUnit:   gl.TEXTURE0,
		attribs:      make(map[uint]*AttribPointer),
		uniforms:     make(map[int32]any),
		disabled:     make(map[gl.Enum]bool),
	}
}

func (c *Context) record(name string, args ...any) {
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

// raise sets the sticky error flag if none is pending.
func (c *Context) raise(code gl.Enum) {
	if c.err == gl.NO_ERROR {
		c.err = code
	}
}

// SetError injects a pending GL error, as if a previous call failed.
func (c *Context) SetError(code gl.Enum) {
	c.err = code
}

func (c *Context) id() uint32 {
	c.nextID++
	return c.nextID
}

// ---- Objects ----

func (c *Context) CreateShader(ty gl.Enum) gl.Shader {
	c.record("CreateShader", ty)
	if ty != gl.VERTEX_SHADER && ty != gl.FRAGMENT_SHADER {
		c.raise(gl.INVALID_ENUM)
		return gl.Shader{}
	}
	id := c.id()
	c.shaders[id] = ty
	return gl.Shader{Value: id}
}

func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.record("ShaderSource", s.Value, src)
	if _, ok := c.shaders[s.Value]; !ok {
		c.raise(gl.INVALID_VALUE)
	}
}

func (c *Context) CompileShader(s gl.Shader) {
	c.record("CompileShader", s.Value)
	ty, ok := c.shaders[s.Value]
	if !ok {
		c.raise(gl.INVALID_VALUE)
		return
	}
	c.compiled[s.Value] = c.FailCompile != ty
}

func (c *Context) GetShaderi(s gl.Shader, pname gl.Enum) int {
	c.record("GetShaderi", s.Value, pname)
	if pname == gl.COMPILE_STATUS && c.compiled[s.Value] {
		return 1
	}
	return 0
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	c.record("GetShaderInfoLog", s.Value)
	if c.compiled[s.Value] {
		return ""
	}
	return "0:1: S0001: forced compile failure"
}

func (c *Context) DeleteShader(s gl.Shader) {
	c.record("DeleteShader", s.Value)
	delete(c.shaders, s.Value)
	delete(c.compiled, s.Value)
}

func (c *Context) CreateProgram() gl.Program {
	c.record("CreateProgram")
	id := c.id()
	c.programs[id] = &programState{
		attached: make(map[uint32]bool),
		attribs:  make(map[string]uint),
		uniforms: make(map[string]int32),
	}
	return gl.Program{Init: true, Value: id}
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.record("AttachShader", p.Value, s.Value)
	ps, ok := c.programs[p.Value]
	if !ok {
		c.raise(gl.INVALID_VALUE)
		return
	}
	if _, ok := c.shaders[s.Value]; !ok {
		c.raise(gl.INVALID_VALUE)
		return
	}
	ps.attached[s.Value] = true
}

func (c *Context) DetachShader(p gl.Program, s gl.Shader) {
	c.record("DetachShader", p.Value, s.Value)
	if ps, ok := c.programs[p.Value]; ok {
		delete(ps.attached, s.Value)
	}
}

func (c *Context) LinkProgram(p gl.Program) {
	c.record("LinkProgram", p.Value)
	ps, ok := c.programs[p.Value]
	if !ok {
		c.raise(gl.INVALID_VALUE)
		return
	}
	ok = len(ps.attached) == 2 && !c.FailLink
	for id := range ps.attached {
		ok = ok && c.compiled[id]
	}
	ps.linked = ok
}

func (c *Context) GetProgrami(p gl.Program, pname gl.Enum) int {
	c.record("GetProgrami", p.Value, pname)
	if ps, ok := c.programs[p.Value]; ok && pname == gl.LINK_STATUS && ps.linked {
		return 1
	}
	return 0
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	c.record("GetProgramInfoLog", p.Value)
	if ps, ok := c.programs[p.Value]; ok && !ps.linked {
		return "L0001: forced link failure"
	}
	return ""
}

func (c *Context) UseProgram(p gl.Program) {
	c.record("UseProgram", p.Value)
	if p.Value != 0 {
		ps, ok := c.programs[p.Value]
		if !ok || !ps.linked {
			c.raise(gl.INVALID_OPERATION)
			return
		}
	}
	c.current = p
}

func (c *Context) DeleteProgram(p gl.Program) {
	c.record("DeleteProgram", p.Value)
	delete(c.programs, p.Value)
	if c.current.Value == p.Value {
		c.current = gl.Program{}
	}
}

func (c *Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	c.record("GetAttribLocation", p.Value, name)
	ps, ok := c.programs[p.Value]
	if !ok || !ps.linked {
		c.raise(gl.INVALID_OPERATION)
		return gl.Attrib{}
	}
	loc, ok := ps.attribs[name]
	if !ok {
		loc = uint(len(ps.attribs))
		ps.attribs[name] = loc
	}
	return gl.Attrib{Value: loc}
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	c.record("GetUniformLocation", p.Value, name)
	ps, ok := c.programs[p.Value]
	if !ok || !ps.linked {
		c.raise(gl.INVALID_OPERATION)
		return gl.Uniform{Value: -1}
	}
	loc, ok := ps.uniforms[name]
	if !ok {
		loc = int32(len(ps.uniforms))
		ps.uniforms[name] = loc
	}
	return gl.Uniform{Value: loc}
}

// ---- Buffers ----

func (c *Context) CreateBuffer() gl.Buffer {
	c.record("CreateBuffer")
	id := c.id()
	c.buffers[id] = nil
	return gl.Buffer{Value: id}
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.record("BindBuffer", target, b.Value)
	if target != gl.ARRAY_BUFFER && target != gl.ELEMENT_ARRAY_BUFFER {
		c.raise(gl.INVALID_ENUM)
		return
	}
	if b.Value != 0 {
		if _, ok := c.buffers[b.Value]; !ok {
			c.raise(gl.INVALID_OPERATION)
			return
		}
	}
	c.bound[target] = b
}

func (c *Context) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	c.record("BufferData", target, len(src), usage)
	b := c.bound[target]
	if b.Value == 0 {
		c.raise(gl.INVALID_OPERATION)
		return
	}
	c.buffers[b.Value] = slices.Clone(src)
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	c.record("DeleteBuffer", b.Value)
	delete(c.buffers, b.Value)
	for t, bb := range c.bound {
		if bb.Value == b.Value {
			c.bound[t] = gl.Buffer{}
		}
	}
}

// ---- Textures and framebuffers ----

func (c *Context) CreateTexture() gl.Texture {
	c.record("CreateTexture")
	id := c.id()
	c.textures[id] = &TextureImage{Params: make(map[gl.Enum]int)}
	return gl.Texture{Value: id}
}

func (c *Context) ActiveTexture(texture gl.Enum) {
	c.record("ActiveTexture", texture)
	if texture < gl.TEXTURE0 || texture > gl.TEXTURE31 {
		c.raise(gl.INVALID_ENUM)
		return
	}
	c.activeUnit = texture
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	c.record("BindTexture", target, t.Value)
	if target != gl.TEXTURE_2D {
		c.raise(gl.INVALID_ENUM)
		return
	}
	if t.Value != 0 {
		if _, ok := c.textures[t.Value]; !ok {
			c.raise(gl.INVALID_OPERATION)
			return
		}
	}
	c.boundTex[c.activeUnit] = t
}

func (c *Context) boundImage() *TextureImage {
	t := c.boundTex[c.activeUnit]
	if t.Value == 0 {
		return nil
	}
	return c.textures[t.Value]
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	c.record("TexParameteri", target, pname, param)
	img := c.boundImage()
	if img == nil {
		c.raise(gl.INVALID_OPERATION)
		return
	}
	img.Params[pname] = param
}

func (c *Context) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte) {
	c.record("TexImage2D", target, level, internalFormat, width, height, format, ty, len(data))
	img := c.boundImage()
	if img == nil {
		c.raise(gl.INVALID_OPERATION)
		return
	}
	if width < 0 || height < 0 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	img.Width, img.Height = width, height
	img.Pix = make([]byte, width*height*4)
	copy(img.Pix, data)
}

func (c *Context) TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.record("TexSubImage2D", target, level, x, y, width, height, format, ty, len(data))
	img := c.boundImage()
	if img == nil {
		c.raise(gl.INVALID_OPERATION)
		return
	}
	if x < 0 || y < 0 || x+width > img.Width || y+height > img.Height || len(data) < width*height*4 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	for row := range height {
		dst := ((y+row)*img.Width + x) * 4
		src := row * width * 4
		copy(img.Pix[dst:dst+width*4], data[src:src+width*4])
	}
	img.Uploads++
}

func (c *Context) DeleteTexture(t gl.Texture) {
	c.record("DeleteTexture", t.Value)
	delete(c.textures, t.Value)
	for unit, bt := range c.boundTex {
		if bt.Value == t.Value {
			c.boundTex[unit] = gl.Texture{}
		}
	}
}

func (c *Context) CreateFramebuffer() gl.Framebuffer {
	c.record("CreateFramebuffer")
	id := c.id()
	c.framebuffers[id] = true
	return gl.Framebuffer{Value: id}
}

func (c *Context) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	c.record("BindFramebuffer", target, fb.Value)
	if fb.Value != 0 && !c.framebuffers[fb.Value] {
		c.raise(gl.INVALID_OPERATION)
		return
	}
	c.boundFB = fb
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	c.record("FramebufferTexture2D", target, attachment, texTarget, t.Value, level)
	if c.boundFB.Value == 0 {
		// Attaching to the window-system framebuffer is an error.
		c.raise(gl.INVALID_OPERATION)
		return
	}
	if _, ok := c.textures[t.Value]; !ok {
		c.raise(gl.INVALID_OPERATION)
	}
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	c.record("CheckFramebufferStatus", target)
	if c.FramebufferStatus != 0 {
		return c.FramebufferStatus
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (c *Context) DeleteFramebuffer(fb gl.Framebuffer) {
	c.record("DeleteFramebuffer", fb.Value)
	delete(c.framebuffers, fb.Value)
	if c.boundFB.Value == fb.Value {
		c.boundFB = gl.Framebuffer{}
	}
}

// ---- Vertex state and uniforms ----

func (c *Context) attrib(a gl.Attrib) *AttribPointer {
	p, ok := c.attribs[a.Value]
	if !ok {
		p = &AttribPointer{}
		c.attribs[a.Value] = p
	}
	return p
}

func (c *Context) EnableVertexAttribArray(a gl.Attrib) {
	c.record("EnableVertexAttribArray", a.Value)
	c.attrib(a).Enabled = true
}

func (c *Context) DisableVertexAttribArray(a gl.Attrib) {
	c.record("DisableVertexAttribArray", a.Value)
	c.attrib(a).Enabled = false
}

func (c *Context) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer", dst.Value, size, ty, normalized, stride, offset)
	if size < 1 || size > 4 || stride < 0 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	b := c.bound[gl.ARRAY_BUFFER]
	if b.Value == 0 {
		// x/mobile passes offset as a pointer; without a buffer it is client memory.
		c.raise(gl.INVALID_OPERATION)
		return
	}
	p := c.attrib(dst)
	p.Size, p.Type, p.Normalized, p.Stride, p.Offset, p.Buffer = size, ty, normalized, stride, offset, b
}

func (c *Context) requireProgram() bool {
	if c.current.Value == 0 {
		c.raise(gl.INVALID_OPERATION)
		return false
	}
	return true
}

func (c *Context) Uniform1i(dst gl.Uniform, v int) {
	c.record("Uniform1i", dst.Value, v)
	if c.requireProgram() && dst.Value >= 0 {
		c.uniforms[dst.Value] = v
	}
}

func (c *Context) Uniform4fv(dst gl.Uniform, src []float32) {
	c.record("Uniform4fv", dst.Value, slices.Clone(src))
	if len(src)%4 != 0 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	if c.requireProgram() && dst.Value >= 0 {
		c.uniforms[dst.Value] = slices.Clone(src)
	}
}

func (c *Context) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	c.record("UniformMatrix4fv", dst.Value, slices.Clone(src))
	if len(src)%16 != 0 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	if c.requireProgram() && dst.Value >= 0 {
		c.uniforms[dst.Value] = slices.Clone(src)
	}
}

// ---- Frame state and drawing ----

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.record("ClearColor", red, green, blue, alpha)
	c.clearColor = [4]float32{red, green, blue, alpha}
}

func (c *Context) Clear(mask gl.Enum) {
	c.record("Clear", mask)
	c.clears++
}

func (c *Context) Disable(cap gl.Enum) {
	c.record("Disable", cap)
	c.disabled[cap] = true
}

func (c *Context) Viewport(x, y, width, height int) {
	c.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	c.viewport = [4]int{x, y, width, height}
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	c.record("DrawArrays", mode, first, count)
	if count < 0 || first < 0 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	if !c.requireProgram() {
		return
	}
	c.draws = append(c.draws, Draw{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: c.current,
		Texture: c.boundTex[gl.TEXTURE0],
	})
}

func (c *Context) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	c.record("DrawElements", mode, count, ty, offset)
	if ty != gl.UNSIGNED_SHORT && ty != gl.UNSIGNED_BYTE {
		c.raise(gl.INVALID_ENUM)
		return
	}
	if count < 0 {
		c.raise(gl.INVALID_VALUE)
		return
	}
	if !c.requireProgram() {
		return
	}
	eb := c.bound[gl.ELEMENT_ARRAY_BUFFER]
	if eb.Value == 0 {
		c.raise(gl.INVALID_OPERATION)
		return
	}
	d := Draw{
		Mode:    mode,
		Count:   count,
		Type:    ty,
		Offset:  offset,
		Indexed: true,
		Program: c.current,
		Texture: c.boundTex[gl.TEXTURE0],
	}
	if ty == gl.UNSIGNED_SHORT {
		data := c.buffers[eb.Value]
		for i := range count {
			at := offset + 2*i
			if at+2 > len(data) {
				c.raise(gl.INVALID_OPERATION)
				return
			}
			d.Indices = append(d.Indices, uint16(data[at])|uint16(data[at+1])<<8)
		}
	}
	c.draws = append(c.draws, d)
}

func (c *Context) GetError() gl.Enum {
	c.record("GetError")
	code := c.err
	c.err = gl.NO_ERROR
	return code
}
