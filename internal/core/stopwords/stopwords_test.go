package stopwords

import (
	"reflect"
	"testing"
)

func TestBuiltin(t *testing.T) {
	s := Builtin()
	for _, w := range []string{"the", "a", "an", "in", "on", "of", "for"} {
		if !s.Contains(w) {
			t.Errorf("Builtin().Contains(%q) = false, want true", w)
		}
	}
	if s.Len() != 7 {
		t.Errorf("Builtin().Len() = %d, want 7", s.Len())
	}
	if s.Contains("fox") {
		t.Error("Builtin().Contains(\"fox\") = true, want false")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{"a", "an", "for", "in", "of", "on", "the"}},
		{"adds words", "and\nOr  but\t", []string{"a", "an", "and", "but", "for", "in", "of", "on", "or", "the"}},
		{"duplicates collapse", "the THE the", []string{"a", "an", "for", "in", "of", "on", "the"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text).Words()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q).Words() = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestUnionLeavesReceiverUntouched(t *testing.T) {
	base := Builtin()
	extended := base.Union("with", "")

	if base.Contains("with") {
		t.Fatal("Union mutated the receiver")
	}
	if !extended.Contains("with") {
		t.Fatal("expected union to contain \"with\"")
	}
	if extended.Len() != base.Len()+1 {
		t.Fatalf("extended.Len() = %d, want %d", extended.Len(), base.Len()+1)
	}
}

func TestZeroValue(t *testing.T) {
	var s Set
	if s.Contains("the") {
		t.Fatal("zero Set should be empty")
	}
	if s.Len() != 0 {
		t.Fatalf("zero Set Len() = %d, want 0", s.Len())
	}
}
