package gldemo

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"math/bits"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Pixmap is a decoded source image: width x height RGBA pixels, 4 bytes
// per pixel, rows top to bottom with no padding. This is exactly the
// layout a full-size RGBA/UNSIGNED_BYTE texture upload reads.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Empty reports whether the pixmap has no pixels.
func (p *Pixmap) Empty() bool {
	return p.width == 0 || p.height == 0
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = to8(c.R)
	p.data[i+1] = to8(c.G)
	p.data[i+2] = to8(c.B)
	p.data[i+3] = to8(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGBA{}
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float32(p.data[i+0]) / 255,
		G: float32(p.data[i+1]) / 255,
		B: float32(p.data[i+2]) / 255,
		A: float32(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// PixmapFromImage converts any image to a pixmap. Translucent pixels are
// stored alpha-premultiplied, as image.RGBA holds them.
func PixmapFromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Pixmap{width: b.Dx(), height: b.Dy(), data: dst.Pix}
}

// LoadPixmap decodes an image file. PNG, JPEG, GIF, BMP and WebP are
// supported.
func LoadPixmap(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gldemo: decode %s: %w", path, err)
	}
	pm := PixmapFromImage(img)
	Logger().Debug("gldemo: source image loaded",
		"path", path,
		"format", format,
		"width", pm.width,
		"height", pm.height)
	return pm, nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// Scaled returns a copy resampled to width x height.
func (p *Pixmap) Scaled(width, height int) *Pixmap {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), draw.Src, nil)
	return &Pixmap{width: width, height: height, data: dst.Pix}
}

// CopyFrom replaces p's pixels with src, resampled to p's size when the
// sizes differ. The dimensions of p never change.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src.width == p.width && src.height == p.height {
		copy(p.data, src.data)
		return
	}
	dst := &image.RGBA{Pix: p.data, Stride: p.width * 4, Rect: p.Bounds()}
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src.ToImage(), src.Bounds(), draw.Src, nil)
}

// PowerOfTwo returns p if both sides are powers of two, otherwise a copy
// scaled up to the next powers of two. GLES2 samples non-power-of-two
// textures with REPEAT wrapping as black.
func (p *Pixmap) PowerOfTwo() *Pixmap {
	w, h := nextPow2(p.width), nextPow2(p.height)
	if w == p.width && h == p.height {
		return p
	}
	return p.Scaled(w, h)
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// NewCheckerPixmap creates a width x height checkerboard of cell-sized
// squares alternating between a and b, starting with a at the top left.
func NewCheckerPixmap(width, height, cell int, a, b RGBA) *Pixmap {
	pm := NewPixmap(width, height)
	cell = max(cell, 1)
	for y := range pm.height {
		for x := range pm.width {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			pm.SetPixel(x, y, c)
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
