// Package util provides common utilities including logging helpers,
// file system paths and small numeric helpers.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NewLogger builds a text logger writing to path. An empty path discards output.
// The returned closer must be called on shutdown.
func NewLogger(path, level string) (*slog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	}))
	return logger, file, nil
}

// ParseLogLevel maps a config string to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogError logs an error with context if it is non-nil.
func LogError(logger *slog.Logger, context string, err error) {
	if err != nil && logger != nil {
		logger.Error(context, "error", err)
	}
}
