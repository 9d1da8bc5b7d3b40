// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gldemo"
	"github.com/gogpu/gldemo/render"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// RenderMode selects when the view asks the host for new frames.
type RenderMode int

const (
	// WhenDirty draws only after the surface becomes visible or changes
	// size.
	WhenDirty RenderMode = iota

	// Continuously requests the next frame as soon as one is drawn.
	Continuously
)

// String returns the mode name.
func (m RenderMode) String() string {
	switch m {
	case WhenDirty:
		return "when-dirty"
	case Continuously:
		return "continuously"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// Sender queues events for the host event loop. app.App satisfies it.
type Sender interface {
	Send(event any)
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithRenderMode sets the render mode. The default is WhenDirty.
func WithRenderMode(m RenderMode) ViewOption {
	return func(v *View) {
		v.mode = m
	}
}

// WithLogger sets the view's logger. The default is gldemo.Logger().
func WithLogger(l *slog.Logger) ViewOption {
	return func(v *View) {
		v.logger = l
	}
}

// WithSource sets the pixmap a SourceEvent is copied into. It must be the
// pixmap the renderer draws from. Without it SourceEvents are ignored.
func WithSource(pm *gldemo.Pixmap) ViewOption {
	return func(v *View) {
		v.source = pm
	}
}

// View binds one renderer to the x/mobile event stream: surface creation
// calls Setup, size changes call Resize, paint events call Draw and the
// surface going away calls Release.
//
// A View is driven from the host's event loop goroutine and is not safe
// for concurrent use.
type View struct {
	renderer gldemo.Renderer
	sender   Sender
	mode     RenderMode
	logger   *slog.Logger
	source   *gldemo.Pixmap

	ctx    render.Context
	width  int
	height int
	frames int
}

// NewView creates a view for r. Paint requests are queued on s; s may be
// nil when the host paints on its own schedule.
func NewView(r gldemo.Renderer, s Sender, opts ...ViewOption) *View {
	v := &View{renderer: r, sender: s}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

func (v *View) log() *slog.Logger {
	if v.logger != nil {
		return v.logger
	}
	return gldemo.Logger()
}

// Handle processes one host event. It reports whether a frame was drawn,
// in which case the host must publish it.
func (v *View) Handle(e any) (redraw bool) {
	switch e := e.(type) {
	case lifecycle.Event:
		switch e.Crosses(lifecycle.StageVisible) {
		case lifecycle.CrossOn:
			if err := v.attach(e.DrawContext); err != nil {
				v.log().Error("surface: setup failed", "renderer", fmt.Sprintf("%T", v.renderer), "err", err)
				return false
			}
			v.invalidate()
		case lifecycle.CrossOff:
			v.detach()
		}
	case size.Event:
		if e.WidthPx <= 0 || e.HeightPx <= 0 {
			v.log().Debug("surface: ignoring empty size", "width", e.WidthPx, "height", e.HeightPx)
			return false
		}
		v.width, v.height = e.WidthPx, e.HeightPx
		if err := v.renderer.Resize(v.width, v.height); err != nil {
			v.log().Warn("surface: resize failed", "err", err)
			return false
		}
		v.invalidate()
	case paint.Event:
		if v.ctx == nil || e.External {
			return false
		}
		v.renderer.Draw()
		if err := render.CheckError(v.ctx, "draw"); err != nil {
			v.log().Warn("surface: GL error after draw", "frame", v.frames, "err", err)
		}
		v.frames++
		if v.mode == Continuously {
			v.invalidate()
		}
		return true
	case SourceEvent:
		if v.source == nil || e.Pixmap == nil {
			return false
		}
		v.source.CopyFrom(e.Pixmap)
		v.log().Debug("surface: source reloaded", "path", e.Path)
		v.invalidate()
	}
	return false
}

func (v *View) attach(drawContext any) error {
	ctx, ok := drawContext.(render.Context)
	if !ok {
		return ErrNoDrawContext
	}
	if err := v.renderer.Setup(ctx); err != nil {
		return err
	}
	v.ctx = ctx
	if v.width > 0 && v.height > 0 {
		if err := v.renderer.Resize(v.width, v.height); err != nil {
			v.log().Warn("surface: resize failed", "err", err)
		}
	}
	v.log().Info("surface: attached", "mode", v.mode.String())
	return nil
}

func (v *View) detach() {
	if v.ctx == nil {
		return
	}
	v.renderer.Release()
	v.ctx = nil
	v.log().Info("surface: detached", "frames", v.frames)
}

// invalidate asks the host for a paint event.
func (v *View) invalidate() {
	if v.sender != nil && v.ctx != nil {
		v.sender.Send(paint.Event{})
	}
}

// Attached reports whether the renderer currently holds GL resources.
func (v *View) Attached() bool {
	return v.ctx != nil
}

// Mode returns the render mode.
func (v *View) Mode() RenderMode {
	return v.mode
}

// Size returns the last non-empty surface size.
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// Frames returns the number of frames drawn.
func (v *View) Frames() int {
	return v.frames
}

// Close releases the renderer if it is attached.
func (v *View) Close() {
	v.detach()
}
