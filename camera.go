package gldemo

import "fmt"

// Default camera parameters shared by the transformed renderers.
const (
	DefaultNear        = 3
	DefaultFar         = 7
	DefaultEyeDistance = 7
)

// FrustumPlanes holds the clip planes of a perspective projection.
type FrustumPlanes struct {
	Left, Right, Bottom, Top, Near, Far float32
}

// Matrix returns the projection matrix for the planes.
func (f FrustumPlanes) Matrix() Mat4 {
	return Frustum(f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far)
}

// Camera is a fixed viewpoint with a symmetric perspective projection
// whose horizontal extent follows the surface aspect ratio.
type Camera struct {
	Eye    Vec3
	Center Vec3
	Up     Vec3
	Near   float32
	Far    float32
}

// DefaultCamera returns the camera used by the demo renderers: eye at
// (0,0,7) looking at the origin, +Y up, near 3, far 7.
func DefaultCamera() Camera {
	return Camera{
		Eye:  Vec3{0, 0, DefaultEyeDistance},
		Up:   Vec3{0, 1, 0},
		Near: DefaultNear,
		Far:  DefaultFar,
	}
}

// Transform is the matrix set computed for one surface size.
type Transform struct {
	Planes     FrustumPlanes
	Projection Mat4
	View       Mat4
	Combined   Mat4 // Projection * View
}

// Planes returns the frustum for a width x height surface:
// left/right = ∓width/height, bottom/top = ∓1.
func (c Camera) Planes(width, height int) (FrustumPlanes, error) {
	if width <= 0 || height <= 0 {
		return FrustumPlanes{}, fmt.Errorf("%w: %dx%d", ErrInvalidSurfaceSize, width, height)
	}
	if !(c.Near > 0 && c.Far > c.Near) {
		return FrustumPlanes{}, fmt.Errorf("%w: near %v, far %v", ErrInvalidCamera, c.Near, c.Far)
	}
	ratio := float32(width) / float32(height)
	return FrustumPlanes{
		Left:   -ratio,
		Right:  ratio,
		Bottom: -1,
		Top:    1,
		Near:   c.Near,
		Far:    c.Far,
	}, nil
}

// View returns the camera's view matrix.
func (c Camera) View() Mat4 {
	return LookAt(c.Eye, c.Center, c.Up)
}

// Transform computes projection, view and their product for a surface.
// It returns ErrInvalidSurfaceSize or ErrInvalidCamera instead of a matrix
// holding NaN or Inf.
func (c Camera) Transform(width, height int) (Transform, error) {
	planes, err := c.Planes(width, height)
	if err != nil {
		return Transform{}, err
	}
	proj := planes.Matrix()
	view := c.View()
	combined := proj.Mul(view)
	if !combined.IsFinite() {
		return Transform{}, fmt.Errorf("%w: non-finite transform for eye %v, center %v, up %v",
			ErrInvalidCamera, c.Eye, c.Center, c.Up)
	}
	return Transform{
		Planes:     planes,
		Projection: proj,
		View:       view,
		Combined:   combined,
	}, nil
}
