package gldemo

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-4

func near32(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func assertMat(t *testing.T, name string, got, want Mat4) {
	t.Helper()
	for i := range got {
		if !near32(got[i], want[i]) {
			t.Errorf("%s[%d] = %v, want %v\ngot  %v\nwant %v", name, i, got[i], want[i], got, want)
			return
		}
	}
}

func translate(x, y, z float32) Mat4 {
	m := Identity4()
	m[12], m[13], m[14] = x, y, z
	return m
}

func TestMat4Mul(t *testing.T) {
	a := translate(1, 2, 3)
	b := translate(10, 20, 30)

	assertMat(t, "I*a", Identity4().Mul(a), a)
	assertMat(t, "a*I", a.Mul(Identity4()), a)
	assertMat(t, "a*b", a.Mul(b), translate(11, 22, 33))

	// A scale followed by a translation is not the translation followed by
	// the scale.
	s := Identity4()
	s[0], s[5], s[10] = 2, 2, 2
	got := s.Mul(a).MulVec4(Vec4{0, 0, 0, 1})
	if got != (Vec4{2, 4, 6, 1}) {
		t.Errorf("(s*a)*origin = %v, want {2 4 6 1}", got)
	}
	got = a.Mul(s).MulVec4(Vec4{0, 0, 0, 1})
	if got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("(a*s)*origin = %v, want {1 2 3 1}", got)
	}
}

func TestMat4At(t *testing.T) {
	m := translate(5, 6, 7)
	tests := []struct {
		r, c int
		want float32
	}{
		{0, 0, 1},
		{0, 3, 5},
		{1, 3, 6},
		{2, 3, 7},
		{3, 3, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := m.At(tt.r, tt.c); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.r, tt.c, got, tt.want)
		}
	}
}

func TestMat4IsFinite(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want bool
	}{
		{"identity", Identity4(), true},
		{"zero", Mat4{}, true},
		{"nan", Mat4{0: float32(math.NaN())}, false},
		{"inf", Mat4{15: float32(math.Inf(1))}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrustum(t *testing.T) {
	got := Frustum(-4.0/3, 4.0/3, -1, 1, 3, 7)
	want := Mat4{
		2.25, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, -2.5, -1,
		0, 0, -10.5, 0,
	}
	assertMat(t, "frustum", got, want)

	// Points on the near and far planes map to the depth range ends.
	for _, tt := range []struct {
		z, ndc float32
	}{
		{-3, -1},
		{-7, 1},
	} {
		v := got.MulVec4(Vec4{0, 0, tt.z, 1})
		if !near32(v.Z/v.W, tt.ndc) {
			t.Errorf("depth of z=%v: %v, want %v", tt.z, v.Z/v.W, tt.ndc)
		}
	}
}

func TestFrustumAsymmetric(t *testing.T) {
	got := Frustum(0, 2, 1, 3, 1, 5)
	if !near32(got[8], 1) || !near32(got[9], 2) {
		t.Errorf("off-center terms = %v, %v; want 1, 2", got[8], got[9])
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name            string
		eye, center, up Vec3
		want            Mat4
	}{
		{
			name:   "default camera",
			eye:    Vec3{0, 0, 7},
			center: Vec3{},
			up:     Vec3{0, 1, 0},
			want:   translate(0, 0, -7),
		},
		{
			name:   "origin looking down -z",
			eye:    Vec3{},
			center: Vec3{0, 0, -1},
			up:     Vec3{0, 1, 0},
			want:   Identity4(),
		},
		{
			name:   "looking down +x",
			eye:    Vec3{},
			center: Vec3{1, 0, 0},
			up:     Vec3{0, 1, 0},
			want: Mat4{
				0, 0, -1, 0,
				0, 1, 0, 0,
				1, 0, 0, 0,
				0, 0, 0, 1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMat(t, "view", LookAt(tt.eye, tt.center, tt.up), tt.want)
		})
	}
}

func TestLookAtMapsCenterOntoAxis(t *testing.T) {
	eye := Vec3{3, 4, 5}
	center := Vec3{-1, 2, 0}
	m := LookAt(eye, center, Vec3{0, 1, 0})

	p := m.MulVec4(Vec4{center.X, center.Y, center.Z, 1})
	dist := center.Sub(eye).Len()
	if !near32(p.X, 0) || !near32(p.Y, 0) || !near32(p.Z, -dist) {
		t.Errorf("center in view space = %v, want (0, 0, %v)", p, -dist)
	}
	e := m.MulVec4(Vec4{eye.X, eye.Y, eye.Z, 1})
	if !near32(e.X, 0) || !near32(e.Y, 0) || !near32(e.Z, 0) {
		t.Errorf("eye in view space = %v, want origin", e)
	}
}

func TestCameraPlanes(t *testing.T) {
	tests := []struct {
		width, height int
		ratio         float32
	}{
		{800, 600, 4.0 / 3},
		{600, 800, 0.75},
		{1080, 1920, 0.5625},
		{1, 1, 1},
	}
	c := DefaultCamera()
	for _, tt := range tests {
		p, err := c.Planes(tt.width, tt.height)
		if err != nil {
			t.Fatalf("Planes(%d, %d): %v", tt.width, tt.height, err)
		}
		want := FrustumPlanes{-tt.ratio, tt.ratio, -1, 1, 3, 7}
		if !near32(p.Left, want.Left) || !near32(p.Right, want.Right) ||
			p.Bottom != want.Bottom || p.Top != want.Top || p.Near != want.Near || p.Far != want.Far {
			t.Errorf("Planes(%d, %d) = %+v, want %+v", tt.width, tt.height, p, want)
		}
	}
}

func TestCameraInvalidSize(t *testing.T) {
	withPlanes := func(near, far float32) Camera {
		c := DefaultCamera()
		c.Near, c.Far = near, far
		return c
	}
	farEye := DefaultCamera()
	farEye.Eye = Vec3{0, 0, float32(math.Inf(1))}

	tests := []struct {
		name   string
		camera Camera
		w, h   int
		want   error
	}{
		{"zero width", DefaultCamera(), 0, 600, ErrInvalidSurfaceSize},
		{"zero height", DefaultCamera(), 800, 0, ErrInvalidSurfaceSize},
		{"zero size", DefaultCamera(), 0, 0, ErrInvalidSurfaceSize},
		{"negative width", DefaultCamera(), -1, 10, ErrInvalidSurfaceSize},
		{"negative height", DefaultCamera(), 10, -1, ErrInvalidSurfaceSize},
		{"near equals far", withPlanes(5, 5), 800, 600, ErrInvalidCamera},
		{"zero planes", withPlanes(0, 0), 800, 600, ErrInvalidCamera},
		{"negative near", withPlanes(-1, 7), 800, 600, ErrInvalidCamera},
		{"far before near", withPlanes(7, 3), 800, 600, ErrInvalidCamera},
		{"nan near", withPlanes(float32(math.NaN()), 7), 800, 600, ErrInvalidCamera},
		{"infinite eye", farEye, 800, 600, ErrInvalidCamera},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.camera.Transform(tt.w, tt.h)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Transform(%d, %d) error = %v, want %v", tt.w, tt.h, err, tt.want)
			}
			if tr != (Transform{}) {
				t.Errorf("Transform() on error = %+v, want zero value", tr)
			}
		})
	}
}

func TestCameraTransform(t *testing.T) {
	tr, err := DefaultCamera().Transform(800, 600)
	if err != nil {
		t.Fatal(err)
	}

	assertMat(t, "projection", tr.Projection, Frustum(-4.0/3, 4.0/3, -1, 1, 3, 7))
	assertMat(t, "view", tr.View, translate(0, 0, -7))
	assertMat(t, "combined", tr.Combined, tr.Projection.Mul(tr.View))

	// Projection * View and View * Projection differ in the depth terms;
	// only the former places the origin on the far plane.
	if near32(tr.Combined[10], tr.View.Mul(tr.Projection)[10]) {
		t.Error("combined transform must not be View * Projection")
	}
	if !near32(tr.Combined[14], 7) || !near32(tr.Combined[15], 7) {
		t.Errorf("combined translation column = (%v, %v), want (7, 7)", tr.Combined[14], tr.Combined[15])
	}
	if !tr.Combined.IsFinite() {
		t.Error("combined transform has non-finite elements")
	}

	// The top vertex of the triangle lands inside the clip volume.
	v := tr.Combined.MulVec4(Vec4{-0.5, 1, 0, 1})
	if v.W <= 0 || math.Abs(float64(v.X/v.W)) > 1 || math.Abs(float64(v.Y/v.W)) > 1 {
		t.Errorf("vertex clip position = %v, want inside the clip volume", v)
	}
}

func TestVec3(t *testing.T) {
	x, y := Vec3{1, 0, 0}, Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %v, want z", got)
	}
	if got := (Vec3{3, 4, 0}).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := (Vec3{0, 0, 2}).Normalize(); got != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize = %v, want (0, 0, 1)", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}
