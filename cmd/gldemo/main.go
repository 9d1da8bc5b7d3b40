//go:build darwin || linux || windows

// Command gldemo runs one of the gldemo renderers in a golang.org/x/mobile
// window, or as an Android app when built with gomobile:
//
//	$ gomobile build github.com/gogpu/gldemo/cmd/gldemo
//	$ go run ./cmd/gldemo -renderer triangle -continuous
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gldemo"
	"github.com/gogpu/gldemo/surface"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

func main() {
	var (
		name       = flag.String("renderer", surface.Quad, "renderer: "+strings.Join(surface.Names(), ", "))
		imagePath  = flag.String("image", "", "image for the quad renderer (PNG, JPEG, GIF, BMP or WebP); default: checkerboard")
		continuous = flag.Bool("continuous", false, "redraw every frame instead of only when the surface changes")
		debugLog   = flag.Bool("debug", false, "log debug output to stderr")
		showFPS    = flag.Bool("fps", false, "draw a frames-per-second counter")
		clearHex   = flag.String("clear", "#000000", "background color as #rgb or #rrggbb")
		watch      = flag.Bool("watch", false, "reload -image whenever the file changes")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *debugLog {
		level = slog.LevelDebug
	}
	gldemo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var src *gldemo.Pixmap
	if *imagePath != "" {
		pm, err := gldemo.LoadPixmap(*imagePath)
		if err != nil {
			log.Fatalf("Failed to load image: %v", err)
		}
		// GLES2 samples non-power-of-two textures with REPEAT wrap as black.
		src = pm.PowerOfTwo()
		if src != pm {
			gldemo.Logger().Info("gldemo: image scaled",
				"from", [2]int{pm.Width(), pm.Height()},
				"to", [2]int{src.Width(), src.Height()})
		}
	}

	background, err := gldemo.ParseHex(*clearHex)
	if err != nil {
		log.Fatalf("Invalid -clear: %v", err)
	}
	if *watch && src == nil {
		log.Fatal("-watch requires -image")
	}

	r, err := surface.New(*name, surface.Options{
		Source:   src,
		Renderer: []gldemo.Option{gldemo.WithClearColor(background)},
	})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	mode := surface.WhenDirty
	if *continuous {
		mode = surface.Continuously
	}

	app.Main(func(a app.App) {
		view := surface.NewView(r, a, surface.WithRenderMode(mode), surface.WithSource(src))
		if *watch {
			sw, err := surface.WatchSource(*imagePath, a)
			if err != nil {
				log.Fatalf("Failed to watch image: %v", err)
			}
			defer func() {
				_ = sw.Close()
			}()
		}
		var (
			overlay *fpsOverlay
			sz      size.Event
		)
		for e := range a.Events() {
			e = a.Filter(e)
			switch e := e.(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					if glctx, ok := e.DrawContext.(gl.Context); ok && *showFPS {
						overlay = newFPSOverlay(glctx)
					}
				case lifecycle.CrossOff:
					overlay.release()
					overlay = nil
				}
				if e.To == lifecycle.StageDead {
					view.Close()
					return
				}
			case size.Event:
				sz = e
			}

			if view.Handle(e) {
				overlay.draw(sz)
				a.Publish()
			}
		}
	})
}

// fpsOverlay draws a frame counter in the corner of the surface.
type fpsOverlay struct {
	images *glutil.Images
	fps    *debug.FPS
}

func newFPSOverlay(glctx gl.Context) *fpsOverlay {
	images := glutil.NewImages(glctx)
	return &fpsOverlay{images: images, fps: debug.NewFPS(images)}
}

func (o *fpsOverlay) draw(sz size.Event) {
	if o == nil {
		return
	}
	o.fps.Draw(sz)
}

func (o *fpsOverlay) release() {
	if o == nil {
		return
	}
	o.fps.Release()
	o.images.Release()
}
