package grove

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/phanxgames/grove/live"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger for grove and the live engine. By default
// nothing is logged. nil restores the silent default. Safe for concurrent
// use with running materializations.
//
// Levels used:
//   - [slog.LevelDebug]: animation starts, materialization statistics
//   - [slog.LevelWarn]: resources the resolver could not provide
func SetLogger(l *slog.Logger) {
	live.SetLogger(l)
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
