// Package comparator applies the plagiarism policy to every pair of documents.
package comparator

import (
	"context"
	"errors"
	"sync"

	"github.com/baditaflorin/go_plagiarism/internal/core/domain"
	"github.com/baditaflorin/go_plagiarism/internal/core/editdistance"
	"github.com/baditaflorin/go_plagiarism/internal/core/lcs"
	"github.com/baditaflorin/go_plagiarism/internal/ports"
)

// Default policy values.
const (
	DefaultSimilarityThreshold = 0.5
	DefaultMinSequenceLength   = 5
)

// Policy decides whether a compared pair counts as plagiarism.
type Policy struct {
	SimilarityThreshold float64
	MinSequenceLength   int
}

// DefaultPolicy returns the default detection policy.
func DefaultPolicy() Policy {
	return Policy{
		SimilarityThreshold: DefaultSimilarityThreshold,
		MinSequenceLength:   DefaultMinSequenceLength,
	}
}

// Validate checks if the policy is usable.
func (p Policy) Validate() error {
	if p.SimilarityThreshold < 0 || p.SimilarityThreshold > 1 {
		return errors.New("similarity threshold must be between 0 and 1")
	}
	if p.MinSequenceLength < 0 {
		return errors.New("minimum sequence length must not be negative")
	}
	return nil
}

// Classify reports whether a pair with the given similarity and matched
// sequence length is plagiarized.
func (p Policy) Classify(similarity float64, matchLen int) bool {
	return similarity >= p.SimilarityThreshold && matchLen >= p.MinSequenceLength
}

// Comparator runs both comparison engines over pairs of normalized documents.
type Comparator struct {
	policy  Policy
	logger  ports.Logger
	workers int
}

var _ ports.PairComparator = (*Comparator)(nil)

// NewComparator creates a comparator. workers <= 1 compares pairs sequentially.
func NewComparator(policy Policy, logger ports.Logger, workers int) (*Comparator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	return &Comparator{
		policy:  policy,
		logger:  logger,
		workers: workers,
	}, nil
}

// Policy returns the comparator's detection policy.
func (c *Comparator) Policy() Policy {
	return c.policy
}

// Compare scores a single pair of documents. Only the Normalized field of
// each document is read.
func (c *Comparator) Compare(_ context.Context, left, right domain.Document) domain.MatchResult {
	similarity, distance := editdistance.SimilarityWithDistance(left.Normalized, right.Normalized)
	sequence := lcs.Words(left.Normalized, right.Normalized)
	plagiarized := c.policy.Classify(similarity, len(sequence))

	c.logger.Debug("Compared documents",
		"left", left.ID,
		"right", right.ID,
		"edit_distance", distance,
		"similarity", similarity,
		"sequence_length", len(sequence),
		"plagiarized", plagiarized,
	)

	return domain.MatchResult{
		Left:         left.ID,
		Right:        right.ID,
		Similarity:   similarity,
		EditDistance: distance,
		Sequence:     sequence,
		Plagiarized:  plagiarized,
	}
}

// Pair identifies two documents by their position in the input.
type Pair struct {
	I, J int
}

// Pairs enumerates every unordered pair of n items as (i, j) with i < j,
// ordered by i then j.
func Pairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}
	return out
}

// CompareAll compares every unordered pair of docs. Results are returned in
// (i, j) order regardless of the number of workers.
func (c *Comparator) CompareAll(ctx context.Context, docs []domain.Document) ([]domain.MatchResult, error) {
	pairs := Pairs(len(docs))
	c.logger.Info("Starting pairwise comparison",
		"documents", len(docs),
		"pairs", len(pairs),
		"workers", c.workers,
	)

	results := make([]domain.MatchResult, len(pairs))
	var err error
	if c.workers == 1 || len(pairs) < 2 {
		err = c.compareSequential(ctx, docs, pairs, results)
	} else {
		err = c.compareParallel(ctx, docs, pairs, results)
	}
	if err != nil {
		c.logger.Error("Pairwise comparison cancelled", "error", err)
		return nil, err
	}

	flagged := 0
	for _, r := range results {
		if r.Plagiarized {
			flagged++
		}
	}
	c.logger.Info("Pairwise comparison completed",
		"pairs", len(results),
		"plagiarized", flagged,
	)
	return results, nil
}

func (c *Comparator) compareSequential(ctx context.Context, docs []domain.Document, pairs []Pair, results []domain.MatchResult) error {
	for k, p := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[k] = c.comparePair(ctx, docs, p)
	}
	return nil
}

// compareParallel fans pairs out to a fixed set of workers. Each worker
// writes into its own slot of results, so no locking is needed.
func (c *Comparator) compareParallel(ctx context.Context, docs []domain.Document, pairs []Pair, results []domain.MatchResult) error {
	workers := min(c.workers, len(pairs))
	jobs := make(chan int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				results[k] = c.comparePair(ctx, docs, pairs[k])
			}
		}()
	}

	var err error
dispatch:
	for k := range pairs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobs <- k:
		}
	}
	close(jobs)
	wg.Wait()

	return err
}

func (c *Comparator) comparePair(ctx context.Context, docs []domain.Document, p Pair) domain.MatchResult {
	r := c.Compare(ctx, docs[p.I], docs[p.J])
	r.LeftIndex = p.I
	r.RightIndex = p.J
	return r
}
