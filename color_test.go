package gldemo

import (
	"image/color"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{0, 0, 0, 255}},
		{"opaque white", White, color.NRGBA{255, 255, 255, 255}},
		{"opaque red", Red, color.NRGBA{255, 0, 0, 255}},
		{"amber", Amber, color.NRGBA{204, 102, 26, 0}},
		{"clamped", RGBA{2, -1, 0.5, 1}, color.NRGBA{255, 0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Color()
			if got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBA_Roundtrip(t *testing.T) {
	original := RGBA{0.8, 0.3, 0.5, 0.9}
	got := FromColor(original.Color())

	const tolerance = 1.0 / 255
	for i, pair := range [][2]float32{
		{original.R, got.R},
		{original.G, got.G},
		{original.B, got.B},
		{original.A, got.A},
	} {
		if absDiff(pair[0], pair[1]) > tolerance {
			t.Errorf("component %d: %v -> %v", i, pair[0], pair[1])
		}
	}
}

func TestRGBA_Array(t *testing.T) {
	if got := Amber.Array(); got != [4]float32{0.8, 0.4, 0.1, 0} {
		t.Errorf("Amber.Array() = %v", got)
	}
	if got := RGB(0.1, 0.2, 0.3); got.A != 1 {
		t.Errorf("RGB alpha = %v, want 1", got.A)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#ff0000", Red, false},
		{"#000", Black, false},
		{"#ffffff", White, false},
		{"#336699", RGB(0.2, 0.4, 0.6), false},
		{"336699", RGBA{}, true},
		{"#zzzzzz", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			for i, pair := range [][2]float32{
				{got.R, tt.want.R}, {got.G, tt.want.G}, {got.B, tt.want.B}, {got.A, tt.want.A},
			} {
				if absDiff(pair[0], pair[1]) > 1e-6 {
					t.Errorf("ParseHex(%q) component %d = %v, want %v", tt.in, i, pair[0], pair[1])
				}
			}
		})
	}
}

func TestRGBA_Hex(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{Black, "#000000"},
		{Red, "#ff0000"},
		{Amber, "#cc661a"},
		{RGBA{2, -1, 0, 1}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	got := flatten([]RGBA{Red, Green, Blue})
	want := []float32{
		1, 0, 0, 1,
		0, 1, 0, 1,
		0, 0, 1, 1,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("flatten[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}
