// Package logger wraps charmbracelet/log behind a process-wide default
// logger stored atomically, so packages can log without threading a logger
// through every call.
package logger

import (
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the global default logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(charm.New(os.Stderr))
}

// Default returns the global default logger instance.
func Default() *charm.Logger {
	return defaultLogger.Load().(*charm.Logger)
}

// SetDefault sets a new global default logger instance.
func SetDefault(l *charm.Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// New creates a new logger writing to stderr with default settings.
func New() *charm.Logger {
	return charm.New(os.Stderr)
}

// SetLevelString parses and applies a log level ("debug", "info", "warn",
// "error") on the default logger. Unknown levels leave the level unchanged
// and are reported through the logger itself.
func SetLevelString(level string) {
	if level == "" {
		return
	}
	lvl, err := charm.ParseLevel(level)
	if err != nil {
		Default().Warn("invalid log level, keeping current", "level", level)
		return
	}
	Default().SetLevel(lvl)
}

// Debug logs a debug message with key-value pairs using the default logger.
func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

// Info logs an info message with key-value pairs using the default logger.
func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

// Warn logs a warning message with key-value pairs using the default logger.
func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

// Error logs an error message with key-value pairs using the default logger.
func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}
