package gldemo

import (
	"fmt"

	"github.com/gogpu/gldemo/render"
	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

const indexedVertexShader = `attribute vec4 vPosition;
void main() {
  gl_Position = vPosition;
}`

const indexedFragmentShader = `precision mediump float;
uniform vec4 vColor;
void main() {
  gl_FragColor = vColor;
}`

// triangleCoords are the three vertices shared by both triangle renderers,
// in normalized device coordinates.
var triangleCoords = []float32{
	-0.5, 1, 0,
	-1, -1, 0,
	0.5, 1, 0,
}

var triangleIndices = []uint16{0, 1, 2}

var indexedLayout = render.VertexLayout{Attributes: []render.VertexAttribute{
	{Name: "vPosition", Format: gputypes.VertexFormatFloat32x3},
}}

// indexedTopology is the primitive the index buffer is drawn with. For
// three indices a strip and a list produce the same single triangle.
const indexedTopology = gputypes.PrimitiveTopologyTriangleStrip

// IndexedTriangleRenderer draws one flat-colored triangle through an
// element buffer and glDrawElements.
type IndexedTriangleRenderer struct {
	opts  options
	color RGBA
	size  surfaceSize
	gpu   *indexedResources
}

type indexedResources struct {
	ctx      render.Context
	program  *render.Program
	vertices *render.Buffer
	indices  *render.IndexBuffer
}

func (g *indexedResources) release() {
	g.indices.Release()
	g.vertices.Release()
	g.program.Release()
}

// NewIndexedTriangleRenderer creates the renderer. The first palette
// color, if any, replaces the default amber fill.
func NewIndexedTriangleRenderer(opts ...Option) *IndexedTriangleRenderer {
	o := newOptions(opts)
	return &IndexedTriangleRenderer{
		opts:  o,
		color: fitPalette(o.palette, []RGBA{Amber}, 1)[0],
	}
}

// Setup compiles the program and uploads the vertex and index buffers.
func (r *IndexedTriangleRenderer) Setup(ctx render.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	r.Release()

	g := &indexedResources{ctx: ctx}
	var err error
	g.program, err = render.NewProgram(ctx, render.ProgramDescriptor{
		Label:          "indexed-triangle",
		VertexSource:   indexedVertexShader,
		FragmentSource: indexedFragmentShader,
		Attributes:     indexedLayout.Names(),
		Uniforms:       []string{"vColor"},
	})
	if err != nil {
		return fmt.Errorf("gldemo: indexed triangle: %w", err)
	}
	if g.vertices, err = render.NewVertexBuffer(ctx, triangleCoords); err != nil {
		g.release()
		return fmt.Errorf("gldemo: indexed triangle: %w", err)
	}
	if g.indices, err = render.NewIndexBuffer(ctx, triangleIndices); err != nil {
		g.release()
		return fmt.Errorf("gldemo: indexed triangle: %w", err)
	}
	r.gpu = g

	if r.size.valid() {
		ctx.Viewport(0, 0, r.size.width, r.size.height)
	}

	r.opts.log().Info("gldemo: indexed triangle ready",
		"program", g.program.Handle().Value,
		"vbo", g.vertices.Handle().Value,
		"ibo", g.indices.Handle().Value)
	return nil
}

// Resize sets the viewport to the full surface.
func (r *IndexedTriangleRenderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		r.opts.log().Warn("gldemo: indexed triangle: ignoring surface size", "width", width, "height", height)
		return fmt.Errorf("%w: %dx%d", ErrInvalidSurfaceSize, width, height)
	}
	r.size = surfaceSize{width, height}
	if r.gpu != nil {
		r.gpu.ctx.Viewport(0, 0, width, height)
	}
	return nil
}

// Draw renders the triangle.
func (r *IndexedTriangleRenderer) Draw() {
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
	g.vertices.Bind()
	render.Pointer(ctx, position, indexedLayout.Attributes[0])
	g.vertices.Unbind()

	color := r.color.Array()
	ctx.Uniform4fv(g.program.Uniform("vColor"), color[:])

	g.indices.Draw(indexedTopology)

	ctx.DisableVertexAttribArray(position)
}

// Release deletes the program and buffers.
func (r *IndexedTriangleRenderer) Release() {
	if r.gpu == nil {
		return
	}
	r.gpu.release()
	r.gpu = nil
	r.opts.log().Info("gldemo: indexed triangle released")
}

// Indices returns the element data the renderer uploads.
func (r *IndexedTriangleRenderer) Indices() []uint16 {
	return append([]uint16(nil), triangleIndices...)
}

// IndexCount returns the number of indices each draw requests.
func (r *IndexedTriangleRenderer) IndexCount() int {
	return len(triangleIndices)
}

// Topology returns the primitive topology of the indexed draw.
func (r *IndexedTriangleRenderer) Topology() gputypes.PrimitiveTopology {
	return indexedTopology
}

// Color returns the flat fill color.
func (r *IndexedTriangleRenderer) Color() RGBA {
	return r.color
}
