package gldemo

import "errors"

// Package errors for gldemo.
var (
	// ErrInvalidSurfaceSize is returned by Resize when width or height is
	// not positive. The aspect ratio would divide by zero.
	ErrInvalidSurfaceSize = errors.New("gldemo: invalid surface size")

	// ErrInvalidCamera is returned by Resize when the camera's clip planes
	// cannot form a finite projection: near must be positive and far must
	// lie beyond it.
	ErrInvalidCamera = errors.New("gldemo: invalid camera")

	// ErrNilContext is returned by Setup when the host passes no context.
	ErrNilContext = errors.New("gldemo: nil GL context")

	// ErrNilSource is returned when the textured quad has no source image.
	ErrNilSource = errors.New("gldemo: nil source image")

	// ErrEmptySource is returned when the source image has no pixels.
	ErrEmptySource = errors.New("gldemo: empty source image")
)
