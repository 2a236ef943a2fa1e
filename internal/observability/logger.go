// Package observability wires structured logging and Prometheus metrics
// for the conversion pipeline.
package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds a slog.Logger from LOG_LEVEL / LOG_FORMAT settings.
// Unknown values fall back to info-level text output.
func NewLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
