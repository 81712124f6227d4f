// logger.go
// Package plagiarism provides shared utilities for the go_plagiarism package.
package plagiarism

import (
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_plagiarism/internal/adapters/logger"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(logger.DefaultConfig(os.Stderr, false))
}
