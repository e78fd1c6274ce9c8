package main

import (
	"io"
	"log/slog"

	"github.com/go-logr/logr"
)

// newLogger builds the CLI logger on a slog handler. logr verbosity V(n)
// maps to slog level -n, so engine V(1) messages show at debug level.
func newLogger(levelStr, formatStr string, outW io.Writer) logr.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return logr.FromSlogHandler(handler)
}
