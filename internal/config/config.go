// Package config loads and validates detector settings from a TOML file.
//
// Values not present in the file keep their defaults, so an empty or absent
// file yields the stock policy: a similarity threshold of 0.5, a minimum
// matched sequence of five words, and the built-in stop words.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultSimilarityThreshold = 0.5
	defaultMinSequenceLength   = 5
	defaultWorkers             = 1
	defaultStopWordsFile       = "common_stop_words.txt"
	defaultLogLevel            = "warn"
)

// Detection contains the plagiarism policy and comparison settings.
type Detection struct {
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	MinSequenceLength   int     `toml:"min_sequence_length"`
	Workers             int     `toml:"workers"`
}

// StopWords configures the words removed before comparison.
type StopWords struct {
	File  string   `toml:"file"`
	Extra []string `toml:"extra"`
}

// Logging contains configuration for log output.
type Logging struct {
	JSON  bool   `toml:"json"`
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Config encapsulates all configuration values for the detector.
type Config struct {
	Detection Detection `toml:"detection"`
	StopWords StopWords `toml:"stop_words"`
	Logging   Logging   `toml:"logging"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Detection: Detection{
			SimilarityThreshold: defaultSimilarityThreshold,
			MinSequenceLength:   defaultMinSequenceLength,
			Workers:             defaultWorkers,
		},
		StopWords: StopWords{
			File: defaultStopWordsFile,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// or a missing file returns the defaults; exists reports whether a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	exists := false
	if path != "" {
		file, err := os.Open(path)
		switch {
		case err == nil:
			defer file.Close()
			decoder := toml.NewDecoder(file)
			if err := decoder.Decode(&cfg); err != nil {
				return nil, false, fmt.Errorf("parse config: %w", err)
			}
			exists = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, false, fmt.Errorf("open config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

func (c *Config) normalize() {
	c.StopWords.File = strings.TrimSpace(c.StopWords.File)
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Detection.Workers < 1 {
		c.Detection.Workers = defaultWorkers
	}
	extra := c.StopWords.Extra[:0]
	for _, w := range c.StopWords.Extra {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			extra = append(extra, w)
		}
	}
	c.StopWords.Extra = extra
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Detection.SimilarityThreshold < 0 || c.Detection.SimilarityThreshold > 1 {
		return fmt.Errorf("detection.similarity_threshold must be between 0 and 1, got %v", c.Detection.SimilarityThreshold)
	}
	if c.Detection.MinSequenceLength < 0 {
		return fmt.Errorf("detection.min_sequence_length must not be negative, got %d", c.Detection.MinSequenceLength)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}
