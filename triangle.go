package gldemo

import (
	"fmt"

	"github.com/gogpu/gldemo/render"
	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

const triangleVertexShader = `attribute vec4 vPosition;
uniform mat4 vMatrix;
attribute vec4 aColor;
varying vec4 vColor;
void main() {
  gl_Position = vMatrix * vPosition;
  vColor = aColor;
}`

const triangleFragmentShader = `precision mediump float;
varying vec4 vColor;
void main() {
  gl_FragColor = vColor;
}`

// DefaultTrianglePalette holds the vertex colors of the transformed
// triangle, in triangleCoords order.
var DefaultTrianglePalette = []RGBA{Red, Green, Blue}

var triangleLayout = render.VertexLayout{Attributes: []render.VertexAttribute{
	{Name: "vPosition", Format: gputypes.VertexFormatFloat32x3},
	{Name: "aColor", Format: gputypes.VertexFormatFloat32x4},
}}

const triangleVertexCount = 3

// TransformedTriangleRenderer draws a triangle with interpolated vertex
// colors, projected through the camera transform.
type TransformedTriangleRenderer struct {
	opts   options
	colors []RGBA
	view   perspective
	gpu    *triangleResources
}

type triangleResources struct {
	ctx       render.Context
	program   *render.Program
	positions *render.Buffer
	colors    *render.Buffer
}

func (g *triangleResources) release() {
	g.colors.Release()
	g.positions.Release()
	g.program.Release()
}

// NewTransformedTriangleRenderer creates the renderer.
func NewTransformedTriangleRenderer(opts ...Option) *TransformedTriangleRenderer {
	o := newOptions(opts)
	return &TransformedTriangleRenderer{
		opts:   o,
		colors: fitPalette(o.palette, DefaultTrianglePalette, triangleVertexCount),
		view:   newPerspective(o.camera),
	}
}

// Setup links the program and uploads positions and colors.
func (r *TransformedTriangleRenderer) Setup(ctx render.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	r.Release()

	g := &triangleResources{ctx: ctx}
	var err error
	g.program, err = render.NewProgram(ctx, render.ProgramDescriptor{
		Label:          "transformed-triangle",
		VertexSource:   triangleVertexShader,
		FragmentSource: triangleFragmentShader,
		Attributes:     triangleLayout.Names(),
		Uniforms:       []string{"vMatrix"},
	})
	if err != nil {
		r.opts.log().Error("gldemo: transformed triangle: program", "err", err)
		return fmt.Errorf("gldemo: transformed triangle: %w", err)
	}
	if g.positions, err = render.NewVertexBuffer(ctx, triangleCoords); err != nil {
		g.release()
		return fmt.Errorf("gldemo: transformed triangle: %w", err)
	}
	if g.colors, err = render.NewVertexBuffer(ctx, flatten(r.colors)); err != nil {
		g.release()
		return fmt.Errorf("gldemo: transformed triangle: %w", err)
	}
	r.gpu = g

	if r.view.size.valid() {
		ctx.Viewport(0, 0, r.view.size.width, r.view.size.height)
	}

	r.opts.log().Info("gldemo: transformed triangle ready", "program", g.program.Handle().Value)
	return nil
}

// Resize sets the viewport and recomputes the camera transform.
func (r *TransformedTriangleRenderer) Resize(width, height int) error {
	if err := r.view.resize(width, height); err != nil {
		r.opts.log().Warn("gldemo: transformed triangle: ignoring surface size", "width", width, "height", height)
		return err
	}
	if r.gpu != nil {
		r.gpu.ctx.Viewport(0, 0, width, height)
	}
	return nil
}

// Draw renders the triangle.
func (r *TransformedTriangleRenderer) Draw() {
	g := r.gpu
	if g == nil {
		return
	}
	ctx := g.ctx

	g.program.Use()
	c := r.opts.clearColor
	ctx.ClearColor(c.R, c.G, c.B, c.A)
	ctx.Clear(gl.COLOR_BUFFER_BIT)
	ctx.Disable(gl.DEPTH_TEST)

	position := g.program.Attrib("vPosition")
	g.positions.Bind()
	render.Pointer(ctx, position, triangleLayout.Attributes[0])

	color := g.program.Attrib("aColor")
	g.colors.Bind()
	render.Pointer(ctx, color, triangleLayout.Attributes[1])
	g.colors.Unbind()

	m := r.view.transform.Combined
	ctx.UniformMatrix4fv(g.program.Uniform("vMatrix"), m.Slice())

	ctx.DrawArrays(render.Topology(gputypes.PrimitiveTopologyTriangleStrip), 0, triangleVertexCount)

	ctx.DisableVertexAttribArray(position)
	ctx.DisableVertexAttribArray(color)
}

// Release deletes the program and buffers.
func (r *TransformedTriangleRenderer) Release() {
	if r.gpu == nil {
		return
	}
	r.gpu.release()
	r.gpu = nil
	r.opts.log().Info("gldemo: transformed triangle released")
}

// VertexColor returns the color vertex i carries into the fragment stage.
// It panics if i is not 0, 1 or 2.
func (r *TransformedTriangleRenderer) VertexColor(i int) RGBA {
	return r.colors[i]
}

// Transform returns the matrices for the last accepted surface size.
func (r *TransformedTriangleRenderer) Transform() Transform {
	return r.view.transform
}
