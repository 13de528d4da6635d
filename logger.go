package mandel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// pkgLogger is the package-wide logger. It defaults to a handler that
// discards everything, so the library is silent unless a frontend opts in.
var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(nopHandler{}))
}

// SetLogger routes the package's structured logging to l. Passing nil
// restores the silent default. Safe for concurrent use.
//
// The package logs at two levels only:
//   - [slog.LevelDebug]: per-pass statistics (grid size, drawable count,
//     pass duration)
//   - [slog.LevelWarn]: rejected viewport mutations
//
// A frontend that wants the debug stream typically does:
//
//	mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	return pkgLogger.Load()
}

// nopHandler drops all records. Enabled reports false so callers skip
// attribute evaluation entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
