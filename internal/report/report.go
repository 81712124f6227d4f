// Package report turns comparison results into user-facing findings and
// renders them as plain text, a table or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/baditaflorin/go_plagiarism/internal/core/domain"
	"github.com/baditaflorin/go_plagiarism/internal/core/lcs"
)

// Finding is the reporting record for one pair of documents.
type Finding struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Detected bool   `json:"detected"`
	// SimilarityPercent is the similarity scaled to 0-100 and rounded to two decimals.
	SimilarityPercent float64 `json:"similarity_percent"`
	// Sequence holds the matched words in reading order, joined by single spaces.
	Sequence       string `json:"sequence,omitempty"`
	SequenceLength int    `json:"sequence_length"`
}

// FromMatch converts a comparison result into a finding, restoring the
// matched words to reading order.
func FromMatch(r domain.MatchResult) Finding {
	f := Finding{
		Left:              r.Left,
		Right:             r.Right,
		Detected:          r.Plagiarized,
		SimilarityPercent: math.Round(r.Similarity*100*100) / 100,
		SequenceLength:    len(r.Sequence),
	}
	if r.Plagiarized {
		f.Sequence = strings.Join(lcs.Reverse(r.Sequence), " ")
	}
	return f
}

// FromMatches converts results in order.
func FromMatches(results []domain.MatchResult) []Finding {
	out := make([]Finding, len(results))
	for i, r := range results {
		out[i] = FromMatch(r)
	}
	return out
}

// Format selects a renderer.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %s. Must be 'text', 'table', or 'json'", s)
	}
}

// Options tune rendering.
type Options struct {
	// Color enables colored table cells.
	Color bool
}

// Render writes findings to w in the given format.
func Render(w io.Writer, format Format, findings []Finding, opts Options) error {
	switch format {
	case FormatText:
		return RenderText(w, findings)
	case FormatTable:
		return RenderTable(w, findings, opts)
	case FormatJSON:
		return RenderJSON(w, findings)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// RenderText writes one block per finding.
func RenderText(w io.Writer, findings []Finding) error {
	for _, f := range findings {
		var err error
		if f.Detected {
			_, err = fmt.Fprintf(w, "Potential plagiarism detected between %s and %s\nSimilarity: %.2f%%\nSimilar sequence(s):\n- %s\n",
				f.Left, f.Right, f.SimilarityPercent, f.Sequence)
		} else {
			_, err = fmt.Fprintln(w, "No Plagiarism Detected.")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderTable writes all findings as a single table.
func RenderTable(w io.Writer, findings []Finding, opts Options) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Left", "Right", "Similarity", "Matched", "Verdict", "Sequence"})

	for _, f := range findings {
		verdict := "clean"
		if f.Detected {
			verdict = "plagiarism"
			if opts.Color {
				verdict = text.Colors{text.FgRed, text.Bold}.Sprint(verdict)
			}
		} else if opts.Color {
			verdict = text.FgGreen.Sprint(verdict)
		}
		tw.AppendRow(table.Row{
			f.Left,
			f.Right,
			fmt.Sprintf("%.2f%%", f.SimilarityPercent),
			f.SequenceLength,
			verdict,
			f.Sequence,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, WidthMax: 60},
	})
	tw.Render()
	return nil
}

// RenderJSON writes findings as an indented JSON array.
func RenderJSON(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
