package ports

import (
	"context"

	"github.com/baditaflorin/go_plagiarism/internal/core/domain"
)

// PairComparator compares two normalized documents and classifies the pair.
type PairComparator interface {
	Compare(ctx context.Context, left, right domain.Document) domain.MatchResult
}
