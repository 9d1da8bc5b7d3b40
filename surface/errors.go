// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

var (
	// ErrNoRenderer is returned when the registry is empty.
	ErrNoRenderer = errors.New("surface: no renderer registered")

	// ErrNoDrawContext is returned when a visible lifecycle event carries
	// no usable GL context.
	ErrNoDrawContext = errors.New("surface: lifecycle event has no GL draw context")
)

// RendererNotFoundError indicates a named renderer is not registered.
type RendererNotFoundError struct {
	Name string
}

func (e *RendererNotFoundError) Error() string {
	return "surface: renderer not found: " + e.Name
}
