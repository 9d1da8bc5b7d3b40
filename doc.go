// Package gldemo provides three small OpenGL ES 2.0 renderers for mobile
// surfaces.
//
// # Overview
//
// Each renderer owns a handful of GL objects and is driven by the host's
// surface callbacks: Setup when the surface is created, Resize when it
// changes size, Draw once per frame and Release before the context is lost.
//
//   - IndexedTriangleRenderer: one flat amber triangle drawn through an
//     element buffer with glDrawElements
//   - TexturedQuadRenderer: a full-screen quad sampling a texture that is
//     refreshed from a Pixmap every frame, tinted per corner and projected
//     through a perspective camera
//   - TransformedTriangleRenderer: a triangle with interpolated vertex colors
//     projected through the same camera
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gldemo"
//	    "golang.org/x/mobile/gl"
//	)
//
//	src, err := gldemo.LoadPixmap("photo.png")
//	if err != nil {
//	    return err
//	}
//	r, err := gldemo.NewTexturedQuadRenderer(src)
//	if err != nil {
//	    return err
//	}
//
//	// On the GL thread, with glctx a gl.Context:
//	if err := r.Setup(glctx); err != nil {
//	    return err
//	}
//	r.Resize(widthPx, heightPx)
//	r.Draw()
//	r.Release()
//
// The surface package adapts renderers to the golang.org/x/mobile event
// loop and cmd/gldemo is a complete host.
//
// # Camera
//
// The transformed renderers share a Camera: eye at (0, 0, 7) looking at the
// origin with +Y up, and a frustum spanning ±width/height horizontally, ±1
// vertically, near 3 and far 7. The matrix uploaded to the vertex shader is
// Projection * View in column-major order.
//
// # Logging
//
// gldemo is silent by default. Use SetLogger to enable structured logging
// for this package and the render package, or WithLogger for one renderer.
//
// # Threading
//
// Renderers are not safe for concurrent use. All methods must be called on
// the goroutine that owns the GL context.
package gldemo
