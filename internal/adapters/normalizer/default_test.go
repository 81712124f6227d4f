package normalizer

import (
	"testing"

	"github.com/baditaflorin/go_plagiarism/internal/core/stopwords"
)

func TestStopWordNormalizer(t *testing.T) {
	n := NewDefaultNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
		{"lowercases", "Quick BROWN Fox", "quick brown fox"},
		{"drops stop words", "the quick brown fox jumps over the lazy dog", "quick brown fox jumps over lazy dog"},
		{"article a", "a quick brown fox jumps over a lazy dog", "quick brown fox jumps over lazy dog"},
		{"all stop words", "the a an of", ""},
		{"collapses whitespace", "  quick\n\nbrown\t fox  ", "quick brown fox"},
		{"uppercase stop words", "The Fox IN The Box", "fox box"},
		{"punctuation kept", "the dog. The cat,", "dog. cat,"},
		{"unicode", "ÉCOLE in Straße", "école straße"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewStopWordNormalizer(stopwords.Parse("and or but"))
	inputs := []string{
		"",
		"The quick brown fox and the hound",
		"  Spaces   AND tabs\tor newlines\n but words ",
		"the a an of",
		"Ünïcödé Wörds in MIXED case",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCustomStopWords(t *testing.T) {
	n := NewStopWordNormalizer(stopwords.New("fox", "DOG"))
	got := n.Normalize("The quick brown fox jumps over the lazy dog")
	want := "quick brown jumps over lazy"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}
