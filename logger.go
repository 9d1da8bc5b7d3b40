package gldemo

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gldemo/render"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called from the host while a renderer logs on the
// GL thread.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gldemo and its sub-packages.
// By default, gldemo produces no log output.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by gldemo:
//   - [slog.LevelDebug]: GL handle values, attribute and uniform locations
//   - [slog.LevelInfo]: lifecycle events (setup, resize, release)
//   - [slog.LevelWarn]: non-fatal failures (incomplete framebuffer, GL errors)
//
// Example:
//
//	gldemo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	render.SetLogger(l)
}

// Logger returns the current logger used by gldemo.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
