// Package logging holds the logger shared by the pnmtool packages.
//
// Nothing is logged by default. The CLI installs a handler with SetLogger
// when verbose output is requested.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// building attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger replaces the shared logger. Pass nil to restore silent output.
//
// Levels in use:
//   - [slog.LevelDebug]: per-stage diagnostics (header fields, kernel size, ops)
//   - [slog.LevelInfo]: files read and written by the CLI
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current shared logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
