package gldemo

import "log/slog"

// Option configures a renderer during creation.
// Use functional options to customize renderer behavior.
//
// Example:
//
//	// Default quad renderer
//	r, _ := gldemo.NewTexturedQuadRenderer(src)
//
//	// Gray background and a custom tint palette
//	r, _ := gldemo.NewTexturedQuadRenderer(src,
//	    gldemo.WithClearColor(gldemo.RGB(0.2, 0.2, 0.2)),
//	    gldemo.WithPalette(gldemo.White, gldemo.White, gldemo.White, gldemo.White))
type Option func(*options)

// options holds optional configuration for renderer creation.
type options struct {
	logger     *slog.Logger
	clearColor RGBA
	palette    []RGBA
	camera     Camera
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		logger:     nil, // Will be resolved to Logger() at use
		clearColor: Black,
		palette:    nil, // Renderer default
		camera:     DefaultCamera(),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithLogger sets a logger for one renderer, overriding the package
// logger configured by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClearColor sets the color the renderer clears the surface to each
// frame. The default is opaque black.
func WithClearColor(c RGBA) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithPalette sets the per-vertex colors. Renderers pad a short palette
// by repeating its last color and ignore extra entries.
func WithPalette(colors ...RGBA) Option {
	return func(o *options) {
		o.palette = append([]RGBA(nil), colors...)
	}
}

// WithCamera replaces the default camera of the transformed renderers.
func WithCamera(c Camera) Option {
	return func(o *options) {
		o.camera = c
	}
}

// fitPalette returns exactly n colors: the first n of colors, padded by
// repeating the last one. An empty palette yields def.
func fitPalette(colors, def []RGBA, n int) []RGBA {
	if len(colors) == 0 {
		colors = def
	}
	out := make([]RGBA, n)
	for i := range out {
		out[i] = colors[min(i, len(colors)-1)]
	}
	return out
}
