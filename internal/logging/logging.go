// Package logging builds slog loggers from configuration.
package logging

import (
	"io"
	"log/slog"

	"github.com/abhisek/studyplan/internal/config"
)

// New creates a logger writing to w. It does not set the global logger.
// Unknown levels fall back to info, unknown formats to text.
func New(levelStr, formatStr string, w io.Writer) *slog.Logger {
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

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// FromConfig is New driven by a LogConfig.
func FromConfig(cfg config.LogConfig, w io.Writer) *slog.Logger {
	return New(cfg.Level, cfg.Format, w)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
