// plagiarism.go
// Package plagiarism detects textual overlap between documents.
//
// Every unordered pair of documents is scored two ways after lowercasing and
// stop-word removal: a character-level edit-distance similarity
//
//	similarity = 1 - levenshtein(a, b) / max(len(a), len(b))
//
// and the longest common subsequence of words. A pair is reported as
// plagiarism when the similarity reaches the threshold and the common
// subsequence holds at least the minimum number of words.
//
// This version uses the functional options pattern to allow configuration of
// the threshold, minimum sequence length, stop words, workers and logging.
package plagiarism

import (
	"context"
	"errors"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_plagiarism/internal/adapters/logger"
	"github.com/baditaflorin/go_plagiarism/internal/adapters/normalizer"
	"github.com/baditaflorin/go_plagiarism/internal/core/comparator"
	"github.com/baditaflorin/go_plagiarism/internal/core/domain"
	"github.com/baditaflorin/go_plagiarism/internal/core/stopwords"
	"github.com/baditaflorin/go_plagiarism/internal/ports"
	"github.com/baditaflorin/go_plagiarism/internal/report"
)

// Default configuration values.
const (
	DefaultSimilarityThreshold = comparator.DefaultSimilarityThreshold
	DefaultMinSequenceLength   = comparator.DefaultMinSequenceLength
)

// Input is a document to compare, identified by ID.
type Input struct {
	ID   string
	Text string
}

// Finding is the result reported for one pair of documents.
type Finding = report.Finding

// Config holds configuration options for the detector.
type Config struct {
	Threshold         float64
	MinSequenceLength int
	StopWords         stopwords.Set
	ExtraStopWords    []string
	Workers           int
	// Logger for tracing computation steps.
	Logger ports.Logger
}

// Option defines a functional option for configuring the detector.
type Option func(*Config)

// WithThreshold sets the minimum similarity ratio for a pair to be flagged.
func WithThreshold(th float64) Option {
	return func(cfg *Config) {
		cfg.Threshold = th
	}
}

// WithMinSequenceLength sets the minimum number of matched words for a pair to be flagged.
func WithMinSequenceLength(n int) Option {
	return func(cfg *Config) {
		cfg.MinSequenceLength = n
	}
}

// WithStopWords replaces the stop-word set.
func WithStopWords(set stopwords.Set) Option {
	return func(cfg *Config) {
		cfg.StopWords = set
	}
}

// WithExtraStopWords adds words to the stop-word set.
func WithExtraStopWords(words ...string) Option {
	return func(cfg *Config) {
		cfg.ExtraStopWords = append(cfg.ExtraStopWords, words...)
	}
}

// WithWorkers sets how many pairs are compared concurrently.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a logger implementing the Debug/Info/Warn/Error/Close set directly.
func WithPortsLogger(lg ports.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = lg
	}
}

// Detector compares documents for potential plagiarism.
type Detector struct {
	normalizer ports.Normalizer
	pairs      ports.PairComparator
	comparator *comparator.Comparator
	logger     ports.Logger
}

// New creates a Detector with the provided functional options.
// If no logger is provided, a default logger writing to stderr is created.
func New(opts ...Option) (*Detector, error) {
	cfg := Config{
		Threshold:         DefaultSimilarityThreshold,
		MinSequenceLength: DefaultMinSequenceLength,
		StopWords:         stopwords.Builtin(),
		Workers:           1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger.FromExisting(lg)
	}

	stop := cfg.StopWords
	if len(cfg.ExtraStopWords) > 0 {
		stop = stop.Union(cfg.ExtraStopWords...)
	}

	policy := comparator.Policy{
		SimilarityThreshold: cfg.Threshold,
		MinSequenceLength:   cfg.MinSequenceLength,
	}
	cmp, err := comparator.NewComparator(policy, cfg.Logger, cfg.Workers)
	if err != nil {
		return nil, err
	}

	return &Detector{
		normalizer: normalizer.NewStopWordNormalizer(stop),
		pairs:      cmp,
		comparator: cmp,
		logger:     cfg.Logger,
	}, nil
}

// NewDocument normalizes text into a comparison-ready document.
func (d *Detector) NewDocument(id, text string) domain.Document {
	return domain.Document{
		ID:         id,
		Text:       text,
		Normalized: d.normalizer.Normalize(text),
	}
}

// Normalize returns the comparison-ready form of text.
func (d *Detector) Normalize(text string) string {
	return d.normalizer.Normalize(text)
}

// Compare scores a pair of documents. The returned sequence is in reverse
// discovery order; see Finding for the reading-order form.
func (d *Detector) Compare(ctx context.Context, left, right domain.Document) domain.MatchResult {
	return d.pairs.Compare(ctx, left, right)
}

// CompareAll compares every unordered pair of documents in (i, j) order.
func (d *Detector) CompareAll(ctx context.Context, docs []domain.Document) ([]domain.MatchResult, error) {
	return d.comparator.CompareAll(ctx, docs)
}

// Detect normalizes the inputs and returns one finding per unordered pair,
// ordered (0,1), (0,2), ..., (1,2), ...
func (d *Detector) Detect(ctx context.Context, inputs []Input) ([]Finding, error) {
	docs := make([]domain.Document, len(inputs))
	for i, in := range inputs {
		docs[i] = d.NewDocument(in.ID, in.Text)
		d.logger.Debug("Normalized document",
			"id", in.ID,
			"normalized_length", len(docs[i].Normalized),
		)
	}

	results, err := d.comparator.CompareAll(ctx, docs)
	if err != nil {
		return nil, err
	}
	return report.FromMatches(results), nil
}

// Close releases the detector's logger.
func (d *Detector) Close() error {
	return d.logger.Close()
}

// ErrTooFewDocuments is returned by DetectWithDefaults when fewer than two inputs are given.
var ErrTooFewDocuments = errors.New("at least two documents are required")

// DetectWithDefaults runs Detect with the default configuration and a
// discarding logger.
func DetectWithDefaults(ctx context.Context, inputs ...Input) ([]Finding, error) {
	if len(inputs) < 2 {
		return nil, ErrTooFewDocuments
	}
	d, err := New(WithPortsLogger(logger.NewNop()))
	if err != nil {
		return nil, err
	}
	return d.Detect(ctx, inputs)
}
