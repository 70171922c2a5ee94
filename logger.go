package chart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// quietHandler drops every record. Enabled reports false, so chart code
// never builds the attributes of a record nobody reads.
type quietHandler struct{}

func (quietHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (quietHandler) Handle(context.Context, slog.Record) error { return nil }
func (quietHandler) WithAttrs([]slog.Attr) slog.Handler        { return quietHandler{} }
func (quietHandler) WithGroup(string) slog.Handler             { return quietHandler{} }

var (
	quiet = slog.New(quietHandler{})

	// active is nil until SetLogger installs a logger.
	active atomic.Pointer[slog.Logger]
)

// SetLogger routes chart diagnostics to l. Charts are silent until it is
// called, and SetLogger(nil) silences them again. It may be called while
// charts are being computed on other goroutines.
//
// What goes where:
//   - [slog.LevelDebug]: command counts, sampling statistics, skipped
//     regression or confidence bands
//   - [slog.LevelInfo]: the path of every image written
//   - [slog.LevelWarn]: a surface that failed to release, a scheduled
//     deletion that failed
//   - [slog.LevelError]: the chart name and kind of every failed call
//
// The ggchart command installs a text handler on stderr:
//
//	chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger is the logger chart code and its subpackages write to.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return quiet
}
