package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_plagiarism/internal/core/stopwords"
	"github.com/baditaflorin/go_plagiarism/internal/ports"
)

// StopWordNormalizer lowercases text and drops stop words.
type StopWordNormalizer struct {
	stop stopwords.Set
}

// NewStopWordNormalizer creates a normalizer that filters the given stop words.
func NewStopWordNormalizer(stop stopwords.Set) ports.Normalizer {
	return &StopWordNormalizer{stop: stop}
}

// NewDefaultNormalizer creates a normalizer using the built-in stop words.
func NewDefaultNormalizer() ports.Normalizer {
	return NewStopWordNormalizer(stopwords.Builtin())
}

// Normalize lowercases text, splits it on runs of whitespace, removes stop
// words and joins the remaining tokens with a single space.
func (n *StopWordNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	// A Caser keeps state between calls, so one is created per call.
	lower := cases.Lower(language.Und).String(text)

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, token := range strings.Fields(lower) {
		if n.stop.Contains(token) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(token)
	}
	return sb.String()
}
