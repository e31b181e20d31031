// Package logger provides the shared structured logger for the
// dashboard. The TUI owns stdout, so all logging goes to stderr;
// AVD_LOG_LEVEL (debug/info/warn/error) controls verbosity and defaults
// to info so recompute chatter stays out of normal runs.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared logger instance.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: levelFromEnv(),
}))

// levelFromEnv maps AVD_LOG_LEVEL onto a slog level.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("AVD_LOG_LEVEL")) {
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

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
