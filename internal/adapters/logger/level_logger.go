package logger

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_plagiarism/internal/ports"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LevelLogger drops messages below a minimum level before passing them on.
type LevelLogger struct {
	next ports.Logger
	min  Level
}

// WithLevel wraps next so that only messages at or above min are emitted.
func WithLevel(next ports.Logger, min Level) ports.Logger {
	return &LevelLogger{next: next, min: min}
}

// Debug logs a debug message.
func (l *LevelLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.min <= LevelDebug {
		l.next.Debug(msg, keysAndValues...)
	}
}

// Info logs an info message.
func (l *LevelLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.min <= LevelInfo {
		l.next.Info(msg, keysAndValues...)
	}
}

// Warn logs a warning message.
func (l *LevelLogger) Warn(msg string, keysAndValues ...interface{}) {
	if l.min <= LevelWarn {
		l.next.Warn(msg, keysAndValues...)
	}
}

// Error logs an error message.
func (l *LevelLogger) Error(msg string, keysAndValues ...interface{}) {
	l.next.Error(msg, keysAndValues...)
}

// Close closes the wrapped logger.
func (l *LevelLogger) Close() error {
	return l.next.Close()
}
