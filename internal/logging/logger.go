// Package logging provides structured logging configuration using zerolog.
//
// Every bootstrap run gets a run ID that is stored in the context under chi's
// request-ID key, so log lines written while the run is in progress carry a
// run_id field that ties them together.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger so helpers can be added
// without touching the upstream type.
type Logger struct {
	zerolog.Logger

	// runID is the run ID already attached as a field, if any.
	runID string
}

// New builds a Logger writing to w.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" in production for machine parsing and "text" in development.
func New(level, format string, w io.Writer) *Logger {
	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: l}
}

// Setup configures the global zerolog logger and returns it wrapped.
func Setup(level, format string) *Logger {
	l := New(level, format, os.Stdout)
	log.Logger = l.Logger
	return l
}

// Nop returns a Logger that discards everything. Intended for tests.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLevel converts a string log level to a zerolog.Level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithRunID returns a context carrying the run ID. It is stored under chi's
// request-ID key, so middleware.GetReqID and chi-aware code see the same
// value as RunID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, middleware.RequestIDKey, runID)
}

// RunID returns the run ID stored in ctx, or "" if none is set.
func RunID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// FromContext returns a child logger enriched with the run ID from ctx.
// A logger that already carries that run ID is returned as is, so
// components can call it on a logger their caller enriched.
//
// Usage:
//
//	log := e.log.FromContext(ctx)
//	log.Info().Str("file", name).Msg("ingesting")
func (l *Logger) FromContext(ctx context.Context) *Logger {
	id := RunID(ctx)
	if id == "" || id == l.runID {
		return l
	}
	return &Logger{Logger: l.With().Str("run_id", id).Logger(), runID: id}
}

// WithFields returns a child logger with additional string fields.
// Arguments are key/value pairs; a trailing key without a value is ignored.
func (l *Logger) WithFields(kv ...string) *Logger {
	c := l.With()
	for i := 0; i+1 < len(kv); i += 2 {
		c = c.Str(kv[i], kv[i+1])
	}
	return &Logger{Logger: c.Logger(), runID: l.runID}
}
