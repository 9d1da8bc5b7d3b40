// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides owning handles for the OpenGL ES 2.0 objects the
// gldemo renderers create.
//
// # Key Principle
//
// A renderer RECEIVES a GL context from the host surface and owns every
// object it creates on it. Each object is wrapped in a handle type with an
// explicit constructor and an idempotent Release, so a renderer can tear
// down everything it acquired when the host reports context loss.
//
// # Core Types
//
//   - Context: the GLES2 subset of golang.org/x/mobile/gl.Context
//   - Program: linked shader pair with attribute/uniform locations cached at link time
//   - Buffer, IndexBuffer: immutable vertex and element data
//   - Texture: 2D RGBA8 texture with full-size sub-image uploads
//   - Framebuffer: offscreen target with one texture as its color attachment
//   - VertexLayout: single source of truth for attribute component counts and strides
//
// # Usage
//
//	prog, err := render.NewProgram(ctx, render.ProgramDescriptor{
//	    Label:          "triangle",
//	    VertexSource:   vs,
//	    FragmentSource: fs,
//	    Attributes:     []string{"vPosition"},
//	    Uniforms:       []string{"vColor"},
//	})
//	if err != nil {
//	    return err
//	}
//	defer prog.Release()
//
//	vbo, _ := render.NewVertexBuffer(ctx, positions)
//	vbo.Bind()
//	render.Pointer(ctx, prog.Attrib("vPosition"), positionAttr)
//
// # Offscreen Targets
//
// Framebuffer is exported for hosts that render into a texture, for example
// to capture frames or to post-process them before presenting. The demo
// renderers use it only through ValidateAttachment, which the textured quad
// runs at setup to confirm its texture is color-renderable.
//
//	fb, err := render.NewFramebuffer(ctx, tex)
//	if err != nil {
//	    return err
//	}
//	defer fb.Release()
//	fb.Bind()
//	r.Draw()
//	fb.Unbind()
//	ctx.Viewport(0, 0, width, height)
//
// # Thread Safety
//
// Handles are NOT thread-safe. They must be used on the goroutine that owns
// the GL context, which for x/mobile is the app event loop.
package render
