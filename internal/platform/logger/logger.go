// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/flashcards/internal/config"
)

// ParseLevel converts a configured level name to a slog.Level (case-insensitive).
// The second result is false when the name is not recognised.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to out at the configured level. Every
// record carries a session_id attribute identifying the study session.
func New(out io.Writer, cfg config.LogConfig) *slog.Logger {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		// If the log level is invalid, use info level as default and log a warning
		tmpLogger := slog.New(slog.NewTextHandler(out, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With(slog.String("session_id", uuid.NewString()))
}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger writing to out (stderr
// when out is nil) and sets it as the default logger for the application, so
// the slog package functions (slog.Info, slog.Error, etc.) can be used directly.
func Setup(cfg config.LogConfig, out io.Writer) (*slog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	logger := New(out, cfg)
	slog.SetDefault(logger)
	return logger, nil
}
