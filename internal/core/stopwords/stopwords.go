// Package stopwords provides the immutable stop-word set used by the normalizer.
package stopwords

import (
	"sort"
	"strings"
)

// builtin is the fixed initial stop-word list.
var builtin = []string{"the", "a", "an", "in", "on", "of", "for"}

// Set is a read-only set of lowercase tokens. The zero value is an empty set.
// A Set is never mutated after construction, so it is safe to share between
// goroutines.
type Set struct {
	words map[string]struct{}
}

// Builtin returns the set holding only the built-in stop words.
func Builtin() Set {
	return New()
}

// New returns the built-in stop words extended with extra. Extra words are
// lowercased; empty entries are ignored.
func New(extra ...string) Set {
	m := make(map[string]struct{}, len(builtin)+len(extra))
	for _, w := range builtin {
		m[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Parse builds a set from whitespace-separated text, unioned with the
// built-in words.
func Parse(text string) Set {
	return New(strings.Fields(text)...)
}

// Union returns a new set containing the words of s and extra.
func (s Set) Union(extra ...string) Set {
	return New(append(s.Words(), extra...)...)
}

// Contains reports whether token is a stop word. Tokens are expected to be
// lowercased already.
func (s Set) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns the words of the set in sorted order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
