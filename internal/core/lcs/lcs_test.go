package lcs

import (
	"reflect"
	"strings"
	"testing"
	"testing/quick"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []string
	}{
		{"both empty", "", "", nil},
		{"left empty", "", "quick fox", nil},
		{"right empty", "quick fox", "", nil},
		{"identical", "quick brown fox", "quick brown fox", []string{"fox", "brown", "quick"}},
		{"gapped", "quick brown fox jumps", "quick red fox leaps jumps", []string{"jumps", "fox", "quick"}},
		{"disjoint", "completely unrelated content here", "totally different text sample", []string{}},
		{"tie prefers up", "a b", "b a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.a, tt.b)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestWordsEndToEnd(t *testing.T) {
	a := "quick brown fox jumps over lazy dog"
	got := Reverse(Words(a, a))
	if strings.Join(got, " ") != a {
		t.Fatalf("Reverse(Words()) = %q, want %q", strings.Join(got, " "), a)
	}
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
}

func TestReverse(t *testing.T) {
	in := []string{"c", "b", "a"}
	got := Reverse(in)
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Reverse(%v) = %v", in, got)
	}
	if in[0] != "c" {
		t.Error("Reverse modified its input")
	}
	if Reverse(nil) != nil {
		t.Error("Reverse(nil) should be nil")
	}
}

// isSubsequence reports whether seq appears in order within words.
func isSubsequence(seq, words []string) bool {
	k := 0
	for _, w := range words {
		if k < len(seq) && seq[k] == w {
			k++
		}
	}
	return k == len(seq)
}

// vocab maps arbitrary bytes onto a small vocabulary so random inputs share words.
func vocab(raw []byte) string {
	words := []string{"alpha", "beta", "gamma", "delta", "echo"}
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = words[int(b)%len(words)]
	}
	return strings.Join(parts, " ")
}

func TestLengthSymmetric(t *testing.T) {
	f := func(x, y []byte) bool {
		a, b := vocab(x), vocab(y)
		return Length(a, b) == Length(b, a)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestResultIsCommonSubsequence(t *testing.T) {
	f := func(x, y []byte) bool {
		a, b := vocab(x), vocab(y)
		seq := Reverse(Words(a, b))
		return isSubsequence(seq, strings.Fields(a)) && isSubsequence(seq, strings.Fields(b))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLengthBoundedByShorterInput(t *testing.T) {
	f := func(x, y []byte) bool {
		return Length(vocab(x), vocab(y)) <= min(len(x), len(y))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLongDocumentDoesNotRecurse(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("word ")
	}
	text := sb.String()
	if got := Length(text, text); got != 2000 {
		t.Fatalf("Length = %d, want 2000", got)
	}
}
