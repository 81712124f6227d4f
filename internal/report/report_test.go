package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/baditaflorin/go_plagiarism/internal/core/domain"
)

func detectedMatch() domain.MatchResult {
	return domain.MatchResult{
		Left:        "a.txt",
		Right:       "b.txt",
		Similarity:  0.876543,
		Sequence:    []string{"dog", "lazy", "over", "jumps", "fox"},
		Plagiarized: true,
	}
}

func TestFromMatch(t *testing.T) {
	f := FromMatch(detectedMatch())
	if f.SimilarityPercent != 87.65 {
		t.Errorf("SimilarityPercent = %v, want 87.65", f.SimilarityPercent)
	}
	if f.Sequence != "fox jumps over lazy dog" {
		t.Errorf("Sequence = %q, want reading order", f.Sequence)
	}
	if f.SequenceLength != 5 || !f.Detected {
		t.Errorf("unexpected finding: %+v", f)
	}

	clean := FromMatch(domain.MatchResult{Left: "a", Right: "b", Similarity: 0.1, Sequence: []string{"x"}})
	if clean.Detected || clean.Sequence != "" {
		t.Errorf("clean finding should carry no sequence: %+v", clean)
	}
}

func TestFromMatchDoesNotMutateResult(t *testing.T) {
	m := detectedMatch()
	FromMatch(m)
	if m.Sequence[0] != "dog" {
		t.Fatal("FromMatch reordered the result's sequence")
	}
}

func TestRenderText(t *testing.T) {
	findings := FromMatches([]domain.MatchResult{
		detectedMatch(),
		{Left: "a.txt", Right: "c.txt"},
	})

	var buf bytes.Buffer
	if err := RenderText(&buf, findings); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	want := "Potential plagiarism detected between a.txt and b.txt\n" +
		"Similarity: 87.65%\n" +
		"Similar sequence(s):\n" +
		"- fox jumps over lazy dog\n" +
		"No Plagiarism Detected.\n"
	if buf.String() != want {
		t.Errorf("RenderText() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, FromMatches([]domain.MatchResult{detectedMatch()}), Options{}); err != nil {
		t.Fatalf("RenderTable: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"a.txt", "b.txt", "87.65%", "plagiarism", "fox jumps over lazy dog"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, nil); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("RenderJSON(nil) = %q, want []", buf.String())
	}

	buf.Reset()
	if err := Render(&buf, FormatJSON, FromMatches([]domain.MatchResult{detectedMatch()}), Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var decoded []Finding
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Sequence != "fox jumps over lazy dog" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{" TABLE ", FormatTable, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}
