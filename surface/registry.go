// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"sort"
	"sync"

	"github.com/gogpu/gldemo"
)

// Options configures a renderer created through the registry.
type Options struct {
	// Source is the image the textured quad samples. Renderers that do not
	// draw an image ignore it. Nil selects a generated checkerboard.
	Source *gldemo.Pixmap

	// Renderer holds options passed through to the renderer constructor.
	Renderer []gldemo.Option
}

// Factory creates a new renderer with the given options.
type Factory func(opts Options) (gldemo.Renderer, error)

// RegistryEntry represents a registered renderer.
type RegistryEntry struct {
	// Name is the unique identifier for this renderer.
	Name string

	// Priority determines the default choice (higher = preferred).
	Priority int

	// Factory creates renderer instances.
	Factory Factory
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry maps names to renderer factories.
//
// Example registration:
//
//	func init() {
//	    surface.Register("wireframe", 20, wireframeFactory)
//	}
//
// Example usage:
//
//	r, err := surface.New("triangle", surface.Options{})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a renderer to the global registry. Registering a name that
// already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Unregister removes a renderer from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Names returns all registered renderer names sorted by priority (highest
// first).
func Names() []string {
	return globalRegistry.Names()
}

// Get returns information about a specific renderer.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// Default returns the highest-priority renderer name.
func Default() (string, error) {
	return globalRegistry.Default()
}

// New creates a renderer from the global registry.
func New(name string, opts Options) (gldemo.Renderer, error) {
	return globalRegistry.New(name, opts)
}

// Register adds a renderer to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[name] = &RegistryEntry{
		Name:     name,
		Priority: priority,
		Factory:  factory,
	}
}

// Unregister removes a renderer from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Names returns all registered names sorted by priority, ties by name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

// Get returns information about a specific renderer.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// Default returns the highest-priority renderer name.
func (r *Registry) Default() (string, error) {
	names := r.Names()
	if len(names) == 0 {
		return "", ErrNoRenderer
	}
	return names[0], nil
}

// New creates a renderer using the named factory.
func (r *Registry) New(name string, opts Options) (gldemo.Renderer, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &RendererNotFoundError{Name: name}
	}
	rd, err := entry.Factory(opts)
	if err != nil {
		return nil, err
	}
	gldemo.Logger().Debug("surface: renderer created", "name", name)
	return rd, nil
}

// sortedNames must be called with the lock held.
func (r *Registry) sortedNames() []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Built-in renderer names.
const (
	Indexed  = "indexed"
	Quad     = "quad"
	Triangle = "triangle"
)

// DefaultSource returns the image used when Options.Source is nil: a
// 256x256 checkerboard of 32 pixel cells.
func DefaultSource() *gldemo.Pixmap {
	return gldemo.NewCheckerPixmap(256, 256, 32, gldemo.White, gldemo.RGB(0.25, 0.25, 0.25))
}

// init registers the built-in renderers.
func init() {
	Register(Quad, 100, func(opts Options) (gldemo.Renderer, error) {
		src := opts.Source
		if src == nil {
			src = DefaultSource()
		}
		r, err := gldemo.NewTexturedQuadRenderer(src, opts.Renderer...)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
	Register(Triangle, 50, func(opts Options) (gldemo.Renderer, error) {
		return gldemo.NewTransformedTriangleRenderer(opts.Renderer...), nil
	})
	Register(Indexed, 10, func(opts Options) (gldemo.Renderer, error) {
		return gldemo.NewIndexedTriangleRenderer(opts.Renderer...), nil
	})
}
