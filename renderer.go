package gldemo

import "github.com/gogpu/gldemo/render"

// Renderer is the interface a host surface drives.
//
// The host calls the methods on its GL thread, never concurrently:
//
//	Setup -> (Resize)* -> (Draw)* -> Release
//
// and may start again with Setup on a fresh context after Release.
type Renderer interface {
	// Setup creates every GL object the renderer needs on ctx.
	// Called once per surface lifetime, when the surface is created.
	Setup(ctx render.Context) error

	// Resize updates the viewport and any size-dependent transform.
	// Returns ErrInvalidSurfaceSize for a non-positive width or height.
	Resize(width, height int) error

	// Draw renders one frame. Failures degrade to an empty frame.
	Draw()

	// Release deletes every GL object created by Setup. The host calls it
	// when the context is about to be lost. It is safe to call more than
	// once, or before Setup.
	Release()
}

// surfaceSize remembers the last accepted surface size.
type surfaceSize struct {
	width, height int
}

func (s surfaceSize) valid() bool {
	return s.width > 0 && s.height > 0
}

// perspective tracks the surface size and the camera transform derived
// from it. Until the first valid resize the transform is the identity.
type perspective struct {
	camera    Camera
	size      surfaceSize
	transform Transform
}

func newPerspective(c Camera) perspective {
	id := Identity4()
	return perspective{
		camera:    c,
		transform: Transform{Projection: id, View: id, Combined: id},
	}
}

func (p *perspective) resize(width, height int) error {
	t, err := p.camera.Transform(width, height)
	if err != nil {
		return err
	}
	p.size = surfaceSize{width, height}
	p.transform = t
	return nil
}
