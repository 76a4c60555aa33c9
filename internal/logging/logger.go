// Package logging builds the structured loggers used by the command-line
// entry points. Both binaries log to stderr only: stdout carries results
// (randctl) or protocol lines (randgen).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "RANDCTL_LOG_LEVEL"

// NewLogger creates a text logger on stderr at the level named by EnvLevel.
func NewLogger() *slog.Logger {
	return NewLoggerWithWriter(os.Stderr, os.Getenv(EnvLevel))
}

// NewLoggerWithWriter creates a logger that writes to a custom writer.
// Level should be "debug", "info", "warn", or "error"; anything else means warn.
func NewLoggerWithWriter(w io.Writer, level string) *slog.Logger {
	logLevel := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level: logLevel,
		// Add source location for debug level
		AddSource: logLevel == slog.LevelDebug,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
