// Package source loads documents and stop-word lists from the filesystem.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/baditaflorin/go_plagiarism/internal/core/stopwords"
	"github.com/baditaflorin/go_plagiarism/internal/ports"
)

// ErrMissingInput reports a document that could not be read.
var ErrMissingInput = errors.New("file not found")

// RawDocument is a successfully read input file.
type RawDocument struct {
	Path string
	Text string
}

// Skipped records a path that could not be loaded.
type Skipped struct {
	Path string
	Err  error
}

// LoadResult holds the documents that were read and the paths that were skipped.
type LoadResult struct {
	Documents []RawDocument
	Skipped   []Skipped
}

// Loader reads input files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a file loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadDocuments reads each path in order. Unreadable paths are skipped and
// reported in the result; they never abort the load.
func (ld *Loader) LoadDocuments(paths []string) LoadResult {
	var res LoadResult
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			wrapped := fmt.Errorf("%w: %s: %v", ErrMissingInput, path, err)
			ld.logger.Warn("Skipping unreadable document", "path", path, "error", err)
			res.Skipped = append(res.Skipped, Skipped{Path: path, Err: wrapped})
			continue
		}
		ld.logger.Debug("Loaded document", "path", path, "bytes", len(data))
		res.Documents = append(res.Documents, RawDocument{Path: path, Text: string(data)})
	}
	return res
}

// LoadStopWords returns the built-in stop words unioned with the words in
// path and extra. A missing or unreadable file is not an error: the file is
// ignored and the remaining words are used.
func (ld *Loader) LoadStopWords(path string, extra ...string) stopwords.Set {
	set := stopwords.New(extra...)
	if path == "" {
		return set
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ld.logger.Debug("Stop-word file not found, using built-in list", "path", path)
		} else {
			ld.logger.Debug("Stop-word file unreadable, using built-in list", "path", path, "error", err)
		}
		return set
	}

	set = stopwords.Parse(string(data)).Union(extra...)
	ld.logger.Debug("Loaded stop words", "path", path, "count", set.Len())
	return set
}
