package gldemo

import (
	"errors"
	"fmt"

	"github.com/gogpu/gldemo/render"
	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

const quadVertexShader = `precision mediump float;
attribute vec4 position;
attribute vec4 inputTextureCoordinate;
attribute vec4 aColor;
uniform mat4 transform;
varying vec2 textureCoordinate;
varying vec4 mColor;
void main() {
  gl_Position = transform * position;
  textureCoordinate = inputTextureCoordinate.xy;
  mColor = aColor;
}`

const quadFragmentShader = `precision mediump float;
varying vec2 textureCoordinate;
varying vec4 mColor;
uniform sampler2D vTexture;
void main() {
  gl_FragColor = texture2D(vTexture, textureCoordinate) * mColor;
}`

// quadPositions covers the full clip square, ordered for a triangle strip.
var quadPositions = []float32{
	-1, -1, 0,
	1, -1, 0,
	-1, 1, 0,
	1, 1, 0,
}

// quadUVs map the top image row to the top of the quad.
var quadUVs = []float32{
	0, 1,
	1, 1,
	0, 0,
	1, 0,
}

// DefaultQuadPalette is the per-corner tint of the textured quad, in
// quadPositions order.
var DefaultQuadPalette = []RGBA{Green, Red, Blue, White}

var quadLayout = render.VertexLayout{Attributes: []render.VertexAttribute{
	{Name: "position", Format: gputypes.VertexFormatFloat32x3},
	{Name: "inputTextureCoordinate", Format: gputypes.VertexFormatFloat32x2},
	{Name: "aColor", Format: gputypes.VertexFormatFloat32x4},
}}

const (
	quadVertexCount = 4
	quadTextureUnit = 0
)

// TexturedQuadRenderer draws a full-screen quad sampling a texture that is
// refreshed from a source pixmap every frame, tinted by per-corner colors
// and projected through the camera transform.
type TexturedQuadRenderer struct {
	opts    options
	src     *Pixmap
	palette []RGBA
	view    perspective
	gpu     *quadResources
}

type quadResources struct {
	ctx     render.Context
	program *render.Program
	buffers map[string]*render.Buffer
	attribs []gl.Attrib     // quadLayout order
	texture *render.Texture // nil when the framebuffer check failed
}

func (g *quadResources) release() {
	g.texture.Release()
	for _, b := range g.buffers {
		b.Release()
	}
	g.program.Release()
}

// NewTexturedQuadRenderer creates a renderer for src. The pixmap is kept by
// reference and read again on every Draw, so changes to its pixels show up
// on the next frame. Its size must not change after Setup.
func NewTexturedQuadRenderer(src *Pixmap, opts ...Option) (*TexturedQuadRenderer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if src.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySource, src.Width(), src.Height())
	}
	o := newOptions(opts)
	return &TexturedQuadRenderer{
		opts:    o,
		src:     src,
		palette: fitPalette(o.palette, DefaultQuadPalette, quadVertexCount),
		view:    newPerspective(o.camera),
	}, nil
}

// Setup links the program, uploads the quad geometry and allocates the
// texture. A texture that cannot back a framebuffer is dropped with a
// warning; the quad is then drawn untextured.
func (r *TexturedQuadRenderer) Setup(ctx render.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	r.Release()
	log := r.opts.log()

	g := &quadResources{ctx: ctx, buffers: make(map[string]*render.Buffer, len(quadLayout.Attributes))}
	var err error
	g.program, err = render.NewProgram(ctx, render.ProgramDescriptor{
		Label:          "textured-quad",
		VertexSource:   quadVertexShader,
		FragmentSource: quadFragmentShader,
		Attributes:     quadLayout.Names(),
		Uniforms:       []string{"transform", "vTexture"},
	})
	if err != nil {
		log.Error("gldemo: textured quad: program", "err", err)
		return fmt.Errorf("gldemo: textured quad: %w", err)
	}
	g.program.Use()

	data := map[string][]float32{
		"position":               quadPositions,
		"inputTextureCoordinate": quadUVs,
		"aColor":                 flatten(r.palette),
	}
	for _, a := range quadLayout.Attributes {
		if _, err := a.Validate(data[a.Name]); err != nil {
			g.release()
			return fmt.Errorf("gldemo: textured quad: %s: %w", a.Name, err)
		}
		b, err := render.NewVertexBuffer(ctx, data[a.Name])
		if err != nil {
			g.release()
			return fmt.Errorf("gldemo: textured quad: %s: %w", a.Name, err)
		}
		g.buffers[a.Name] = b
		g.attribs = append(g.attribs, g.program.Attrib(a.Name))
	}

	g.texture, err = render.NewTexture(ctx, render.TextureDescriptor{
		Label:        "textured-quad",
		Width:        r.src.Width(),
		Height:       r.src.Height(),
		Format:       gputypes.TextureFormatRGBA8Unorm,
		MinFilter:    gputypes.FilterModeLinear,
		MagFilter:    gputypes.FilterModeLinear,
		AddressModeU: gputypes.AddressModeRepeat,
		AddressModeV: gputypes.AddressModeRepeat,
	})
	if err != nil {
		g.release()
		return fmt.Errorf("gldemo: textured quad: %w", err)
	}
	if err := render.ValidateAttachment(ctx, g.texture); err != nil {
		var fbErr *render.FramebufferError
		if !errors.As(err, &fbErr) {
			g.release()
			return fmt.Errorf("gldemo: textured quad: %w", err)
		}
		log.Warn("gldemo: textured quad: texture dropped", "err", err)
		g.texture.Release()
		g.texture = nil
	} else {
		g.texture.Unbind()
	}
	r.gpu = g

	if r.view.size.valid() {
		ctx.Viewport(0, 0, r.view.size.width, r.view.size.height)
	}

	log.Info("gldemo: textured quad ready",
		"program", g.program.Handle().Value,
		"width", r.src.Width(),
		"height", r.src.Height(),
		"textured", g.texture != nil)
	return nil
}

// Resize sets the viewport and recomputes the camera transform.
func (r *TexturedQuadRenderer) Resize(width, height int) error {
	if err := r.view.resize(width, height); err != nil {
		r.opts.log().Warn("gldemo: textured quad: ignoring surface size", "width", width, "height", height)
		return err
	}
	if r.gpu != nil {
		r.gpu.ctx.Viewport(0, 0, width, height)
	}
	r.opts.log().Debug("gldemo: textured quad resized",
		"width", width,
		"height", height,
		"left", r.view.transform.Planes.Left,
		"right", r.view.transform.Planes.Right)
	return nil
}

// Draw uploads the current source pixels and renders the quad.
func (r *TexturedQuadRenderer) Draw() {
	g := r.gpu
	if g == nil {
		return
	}
	ctx := g.ctx

	g.program.Use()
	c := r.opts.clearColor
	ctx.ClearColor(c.R, c.G, c.B, c.A)
	ctx.Clear(gl.COLOR_BUFFER_BIT)

	for i, a := range quadLayout.Attributes {
		b := g.buffers[a.Name]
		b.Bind()
		render.Pointer(ctx, g.attribs[i], a)
		b.Unbind()
	}

	if g.texture != nil {
		if err := g.texture.Upload(quadTextureUnit, r.src.Data()); err != nil {
			r.opts.log().Warn("gldemo: textured quad: upload", "err", err)
		}
		ctx.Uniform1i(g.program.Uniform("vTexture"), quadTextureUnit)
	}

	m := r.view.transform.Combined
	ctx.UniformMatrix4fv(g.program.Uniform("transform"), m.Slice())

	ctx.DrawArrays(render.Topology(gputypes.PrimitiveTopologyTriangleStrip), 0, quadVertexCount)

	for _, loc := range g.attribs {
		ctx.DisableVertexAttribArray(loc)
	}
	if g.texture != nil {
		g.texture.Unbind()
	}
}

// Release deletes the program, buffers and texture.
func (r *TexturedQuadRenderer) Release() {
	if r.gpu == nil {
		return
	}
	r.gpu.release()
	r.gpu = nil
	r.opts.log().Info("gldemo: textured quad released")
}

// Textured reports whether the renderer holds a texture. It is false
// before Setup and after a failed framebuffer check.
func (r *TexturedQuadRenderer) Textured() bool {
	return r.gpu != nil && r.gpu.texture != nil
}

// Palette returns the four corner colors.
func (r *TexturedQuadRenderer) Palette() []RGBA {
	return append([]RGBA(nil), r.palette...)
}

// Transform returns the matrices for the last accepted surface size.
func (r *TexturedQuadRenderer) Transform() Transform {
	return r.view.transform
}

// Source returns the pixmap the texture is refreshed from.
func (r *TexturedQuadRenderer) Source() *Pixmap {
	return r.src
}
