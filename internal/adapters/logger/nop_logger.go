package logger

import "github.com/baditaflorin/go_plagiarism/internal/ports"

// NopLogger discards every message.
type NopLogger struct{}

// NewNop returns a logger that discards everything.
func NewNop() ports.Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Close() error                 { return nil }
