// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gldemo"
	"github.com/gogpu/gldemo/internal/gltest"
	"github.com/gogpu/gldemo/render"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"
)

// mockRenderer records the lifecycle calls it receives.
type mockRenderer struct {
	calls    []string
	setupErr error
	ctx      render.Context
}

func (m *mockRenderer) Setup(ctx render.Context) error {
	m.calls = append(m.calls, "setup")
	if m.setupErr != nil {
		return m.setupErr
	}
	m.ctx = ctx
	return nil
}

func (m *mockRenderer) Resize(width, height int) error {
	m.calls = append(m.calls, "resize")
	if width <= 0 || height <= 0 {
		return gldemo.ErrInvalidSurfaceSize
	}
	return nil
}

func (m *mockRenderer) Draw()    { m.calls = append(m.calls, "draw") }
func (m *mockRenderer) Release() { m.calls = append(m.calls, "release") }

func (m *mockRenderer) String() string { return strings.Join(m.calls, ",") }

var _ gldemo.Renderer = (*mockRenderer)(nil)

// mockSender counts paint requests.
type mockSender struct {
	events []any
}

func (s *mockSender) Send(e any) { s.events = append(s.events, e) }

func (s *mockSender) paints() int {
	n := 0
	for _, e := range s.events {
		if _, ok := e.(paint.Event); ok {
			n++
		}
	}
	return n
}

func visible(ctx any) lifecycle.Event {
	return lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageFocused, DrawContext: ctx}
}

func hidden() lifecycle.Event {
	return lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageAlive}
}

func TestViewLifecycle(t *testing.T) {
	m := &mockRenderer{}
	s := &mockSender{}
	v := NewView(m, s)
	ctx := gltest.New()

	if v.Handle(paint.Event{}) {
		t.Error("paint before the surface exists should not draw")
	}
	if v.Handle(size.Event{WidthPx: 800, HeightPx: 600}) {
		t.Error("size event should not report a drawn frame")
	}
	if v.Handle(visible(ctx)) {
		t.Error("lifecycle event should not report a drawn frame")
	}
	if !v.Attached() {
		t.Fatal("view should be attached after becoming visible")
	}
	if m.ctx != ctx {
		t.Error("renderer should receive the event's draw context")
	}
	if !v.Handle(paint.Event{}) {
		t.Error("paint after setup should draw")
	}
	v.Handle(hidden())
	if v.Attached() {
		t.Error("view should detach when hidden")
	}

	want := "resize,setup,resize,draw,release"
	if got := m.String(); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}
	if v.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", v.Frames())
	}
	if w, h := v.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d, want 800x600", w, h)
	}
	// One request after setup; the early size event had no context yet.
	if s.paints() != 1 {
		t.Errorf("paint requests = %d, want 1", s.paints())
	}
}

func TestViewIgnoresEmptySize(t *testing.T) {
	m := &mockRenderer{}
	v := NewView(m, nil)
	v.Handle(visible(gltest.New()))

	tests := []size.Event{
		{WidthPx: 0, HeightPx: 600},
		{WidthPx: 800, HeightPx: 0},
		{},
	}
	for _, e := range tests {
		v.Handle(e)
	}
	if got := m.String(); got != "setup" {
		t.Errorf("calls = %s, want setup only", got)
	}
}

func TestViewExternalPaint(t *testing.T) {
	m := &mockRenderer{}
	v := NewView(m, nil)
	v.Handle(visible(gltest.New()))

	if v.Handle(paint.Event{External: true}) {
		t.Error("external paint events should not draw")
	}
	if v.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", v.Frames())
	}
}

func TestViewLogsGLErrorAfterDraw(t *testing.T) {
	var buf bytes.Buffer
	m := &mockRenderer{}
	v := NewView(m, nil, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	ctx := gltest.New()
	v.Handle(visible(ctx))
	buf.Reset()

	if !v.Handle(paint.Event{}) {
		t.Fatal("clean frame should draw")
	}
	if buf.Len() != 0 {
		t.Fatalf("clean frame logged %q", buf.String())
	}

	ctx.SetError(gl.INVALID_OPERATION)
	if !v.Handle(paint.Event{}) {
		t.Fatal("frame with a GL error should still count as drawn")
	}
	out := buf.String()
	for _, want := range []string{"level=WARN", "GL error after draw", "GL_INVALID_OPERATION"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if v.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", v.Frames())
	}
	// The queue is drained once reported.
	if code := ctx.GetError(); code != gl.NO_ERROR {
		t.Errorf("GetError() after draw = 0x%04x, want GL_NO_ERROR", uint32(code))
	}
}

func TestViewRenderMode(t *testing.T) {
	tests := []struct {
		mode   RenderMode
		frames int
		want   int // paint requests
	}{
		{WhenDirty, 3, 1},
		{Continuously, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s := &mockSender{}
			v := NewView(&mockRenderer{}, s, WithRenderMode(tt.mode))
			v.Handle(visible(gltest.New()))
			for range tt.frames {
				v.Handle(paint.Event{})
			}
			if got := s.paints(); got != tt.want {
				t.Errorf("paint requests = %d, want %d", got, tt.want)
			}
			if v.Mode() != tt.mode {
				t.Errorf("Mode() = %v, want %v", v.Mode(), tt.mode)
			}
		})
	}
}

func TestViewNoDrawContext(t *testing.T) {
	m := &mockRenderer{}
	v := NewView(m, nil)

	v.Handle(visible(nil))
	if v.Attached() {
		t.Error("view should not attach without a draw context")
	}
	if len(m.calls) != 0 {
		t.Errorf("calls = %s, want none", m)
	}
	if v.Handle(paint.Event{}) {
		t.Error("paint should not draw while detached")
	}
}

func TestViewSetupError(t *testing.T) {
	m := &mockRenderer{setupErr: errors.New("link failed")}
	v := NewView(m, nil)

	v.Handle(visible(gltest.New()))
	if v.Attached() {
		t.Error("view should not attach when Setup fails")
	}
	if v.Handle(paint.Event{}) {
		t.Error("paint should not draw after a failed setup")
	}
	v.Close()
	if got := m.String(); got != "setup" {
		t.Errorf("calls = %s, want setup only", got)
	}
}

func TestViewRecreate(t *testing.T) {
	m := &mockRenderer{}
	v := NewView(m, nil)

	v.Handle(size.Event{WidthPx: 320, HeightPx: 480})
	v.Handle(visible(gltest.New()))
	v.Handle(hidden())
	second := gltest.New()
	v.Handle(visible(second))
	v.Close()

	want := "resize,setup,resize,release,setup,resize,release"
	if got := m.String(); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}
	if m.ctx != second {
		t.Error("second Setup should receive the new context")
	}
}

// TestViewDrivesRenderer runs a real renderer through the view against the
// fake GL context and checks the context is left clean.
func TestViewDrivesRenderer(t *testing.T) {
	for _, name := range []string{Quad, Triangle, Indexed} {
		t.Run(name, func(t *testing.T) {
			r, err := New(name, Options{Source: gldemo.NewCheckerPixmap(8, 8, 2, gldemo.White, gldemo.Black)})
			if err != nil {
				t.Fatal(err)
			}
			ctx := gltest.New()
			v := NewView(r, nil)

			v.Handle(visible(ctx))
			gltest.NoError(t, ctx, "setup")
			v.Handle(size.Event{WidthPx: 800, HeightPx: 600})
			gltest.NoError(t, ctx, "resize")
			if !v.Handle(paint.Event{}) {
				t.Fatal("paint should draw")
			}
			gltest.NoError(t, ctx, "draw")

			if got := ctx.ViewportRect(); got != [4]int{0, 0, 800, 600} {
				t.Errorf("viewport = %v, want [0 0 800 600]", got)
			}
			if len(ctx.Draws()) != 1 {
				t.Errorf("draws = %d, want 1", len(ctx.Draws()))
			}

			v.Handle(hidden())
			if live := ctx.Live(); !live.Zero() {
				t.Errorf("live objects after hide = %+v, want none", live)
			}
		})
	}
}

func TestViewSourceEvent(t *testing.T) {
	src := gldemo.NewPixmap(4, 4)
	s := &mockSender{}
	v := NewView(&mockRenderer{}, s, WithSource(src))

	reloaded := gldemo.NewPixmap(2, 2)
	reloaded.Clear(gldemo.Red)

	// Detached: the pixels are copied but no frame is requested.
	if v.Handle(SourceEvent{Path: "a.png", Pixmap: reloaded}) {
		t.Error("source event should not report a drawn frame")
	}
	if src.GetPixel(3, 3) != gldemo.Red {
		t.Errorf("source pixel = %v, want Red", src.GetPixel(3, 3))
	}
	if s.paints() != 0 {
		t.Errorf("paint requests while detached = %d, want 0", s.paints())
	}

	v.Handle(visible(gltest.New()))
	before := s.paints()
	reloaded.Clear(gldemo.Blue)
	v.Handle(SourceEvent{Path: "a.png", Pixmap: reloaded})
	if src.GetPixel(0, 0) != gldemo.Blue {
		t.Errorf("source pixel = %v, want Blue", src.GetPixel(0, 0))
	}
	if got := s.paints() - before; got != 1 {
		t.Errorf("paint requests after reload = %d, want 1", got)
	}
}

func TestViewSourceEventWithoutSource(t *testing.T) {
	s := &mockSender{}
	v := NewView(&mockRenderer{}, s)
	v.Handle(visible(gltest.New()))
	before := s.paints()

	pm := gldemo.NewPixmap(2, 2)
	v.Handle(SourceEvent{Path: "a.png", Pixmap: pm})
	if s.paints() != before {
		t.Error("source event without WithSource should be ignored")
	}
}
