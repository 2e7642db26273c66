package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a structured text logger writing to w.
// app: application name (e.g., "schedsim")
// level: one of "debug", "info", "warn", "error" (default: "info")
func New(w io.Writer, app string, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler).With(slog.String("app", app))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
