// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/wgpu"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for tri and the wgpu stack underneath it.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by tri:
//   - [slog.LevelDebug]: every window event, surface and pipeline setup
//   - [slog.LevelInfo]: adapter selection, close requests, resizes
//   - [slog.LevelWarn]: surface errors during rendering
//   - [slog.LevelError]: other failed frames
//
// Example:
//
//	tri.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	wgpu.SetLogger(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
