package gldemo

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1], the range GL color uniforms and
// attributes use.
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
	Red   = RGBA{1, 0, 0, 1}
	Green = RGBA{0, 1, 0, 1}
	Blue  = RGBA{0, 0, 1, 1}

	// Amber is the flat fill of the indexed triangle. Its alpha is zero;
	// blending is off, so it still renders opaque.
	Amber = RGBA{0.8, 0.4, 0.1, 0}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// ParseHex parses an opaque color in "#rgb" or "#rrggbb" form.
func ParseHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("gldemo: parse color %q: %w", s, err)
	}
	return RGB(float32(c.R), float32(c.G), float32(c.B)), nil
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c RGBA) Hex() string {
	return colorful.Color{
		R: float64(clamp01(c.R)),
		G: float64(clamp01(c.G)),
		B: float64(clamp01(c.B)),
	}.Hex()
}

// Array returns the components in uniform/attribute order.
func (c RGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

func to8(v float32) uint8 {
	return uint8(math32.Round(clamp01(v) * 255))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// flatten packs colors into one float slice, 4 components each.
func flatten(colors []RGBA) []float32 {
	out := make([]float32, 0, len(colors)*4)
	for _, c := range colors {
		out = append(out, c.R, c.G, c.B, c.A)
	}
	return out
}
