// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface connects gldemo renderers to a golang.org/x/mobile host.
//
// A View translates the host's event stream into the renderer lifecycle:
//
//   - lifecycle.Event crossing StageVisible on: Setup with the event's
//     DrawContext, then Resize with the last known size
//   - size.Event: Resize (empty sizes are ignored)
//   - paint.Event: Draw
//   - lifecycle.Event crossing StageVisible off: Release
//   - SourceEvent: copy a reloaded image into the pixmap set WithSource
//
// # Live reload
//
// WatchSource watches an image file and sends a SourceEvent each time it is
// rewritten. The event goes through the host's event queue, so the pixels
// are only touched on the GL thread.
//
// # Registry
//
// Renderers are created by name through a registry. The built-ins are
// "quad" (the default), "triangle" and "indexed":
//
//	r, err := surface.New(surface.Quad, surface.Options{Source: pm})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	view := surface.NewView(r, a, surface.WithRenderMode(surface.Continuously))
//	for e := range a.Events() {
//	    if view.Handle(a.Filter(e)) {
//	        a.Publish()
//	    }
//	}
package surface
