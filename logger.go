package ggdraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so callers skip
// building attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Display event loops log from their
// own goroutine, hence the atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used by ggdraw, its internal packages and
// its display backends. Nothing is logged until SetLogger is called; nil
// restores the silent default. It is safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: canvas created, resized and closed; images loaded;
//     files saved; windows opened and closed
//   - [slog.LevelWarn]: failed saves, image source candidates that failed
//     to decode, drawing programs that returned an error
//
// Example:
//
//	ggdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed with SetLogger. Backends such as
// backend/raylib log through it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
