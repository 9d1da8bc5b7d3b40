package gldemo

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gldemo/internal/gltest"
	"github.com/gogpu/gldemo/render"
)

// captureLogs routes the package logger into a buffer at the given level
// for the duration of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	ctx := context.Background()

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(ctx, level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(ctx, slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("program", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() should stay a nopHandler")
	}
	if _, ok := h.WithGroup("gl").(nopHandler); !ok {
		t.Error("WithGroup() should stay a nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	for _, l := range []*slog.Logger{Logger(), render.Logger()} {
		if l == nil {
			t.Fatal("logger is nil")
		}
		if l.Enabled(context.Background(), slog.LevelError) {
			t.Error("default logger should be disabled")
		}
	}
}

func TestSetLoggerRendererLifecycle(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	r := NewTransformedTriangleRenderer()
	ctx := gltest.New()
	if err := r.Setup(ctx); err != nil {
		t.Fatal(err)
	}
	r.Release()

	out := buf.String()
	for _, want := range []string{"transformed triangle ready", "transformed triangle released"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	// Handle values are Debug level.
	if strings.Contains(out, "program linked") {
		t.Errorf("Info logger should not print debug records:\n%s", out)
	}
}

func TestSetLoggerPropagatesToRender(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	if _, err := render.NewProgram(gltest.New(), render.ProgramDescriptor{
		Label:          "indexed",
		VertexSource:   indexedVertexShader,
		FragmentSource: indexedFragmentShader,
	}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "render: program linked") {
		t.Errorf("render package did not log through SetLogger:\n%s", buf.String())
	}

	SetLogger(nil)
	if render.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should silence the render package too")
	}
	if Logger() == nil {
		t.Error("SetLogger(nil) should install a nop logger, not nil")
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	global := captureLogs(t, slog.LevelInfo)

	var local bytes.Buffer
	r := NewIndexedTriangleRenderer(WithLogger(slog.New(slog.NewTextHandler(&local, nil))))
	if err := r.Resize(0, 10); err == nil {
		t.Fatal("Resize(0, 10) should fail")
	}

	if !strings.Contains(local.String(), "ignoring surface size") {
		t.Errorf("renderer logger output = %q, want resize warning", local.String())
	}
	if global.Len() != 0 {
		t.Errorf("package logger should stay quiet, got %q", global.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if l := Logger(); l != nil {
				l.Debug("frame", "n", 1)
			} else {
				t.Error("Logger() returned nil during concurrent access")
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkQuadDrawSilentLogger(b *testing.B) {
	r, err := NewTexturedQuadRenderer(NewCheckerPixmap(64, 64, 8, White, Black))
	if err != nil {
		b.Fatal(err)
	}
	ctx := gltest.New()
	if err := r.Setup(ctx); err != nil {
		b.Fatal(err)
	}
	if err := r.Resize(800, 600); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		r.Draw()
		ctx.ResetCalls()
	}
}
