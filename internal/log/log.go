// Package log builds the slog logger shared by the HTTP server and the
// console driver.  The simulation core itself never logs.
package log

import (
	"log/slog"
	"os"
)

// BuildLogger returns a JSON slog logger writing to stderr at the given
// level ("debug", "info", "warn", "error"; anything else means info).
func BuildLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	ops := &slog.HandlerOptions{
		Level: l,
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, ops))
}

// ErrAttr wraps an error as a slog attribute.
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
