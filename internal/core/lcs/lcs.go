// Package lcs finds the longest common subsequence of words shared by two
// normalized texts.
package lcs

import (
	"slices"
	"strings"

	"github.com/baditaflorin/go_plagiarism/internal/pool"
)

// Words returns the longest common subsequence of the whitespace-separated
// words in a and b.
//
// The result is in reverse discovery order: the last matched word comes
// first. Use Reverse to obtain reading order. When several subsequences of
// the same length exist, backtracking prefers dropping a word from a, so the
// choice is deterministic but otherwise arbitrary.
func Words(a, b string) []string {
	return Sequence(strings.Fields(a), strings.Fields(b))
}

// Sequence is Words for pre-tokenized input.
func Sequence(words1, words2 []string) []string {
	n1, n2 := len(words1), len(words2)
	if n1 == 0 || n2 == 0 {
		return nil
	}

	dp := pool.Shared.Get(n1+1, n2+1)
	defer pool.Shared.Put(dp)

	for i := 1; i <= n1; i++ {
		prev := dp.Row(i - 1)
		curr := dp.Row(i)
		for j := 1; j <= n2; j++ {
			if words1[i-1] == words2[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
	}

	return backtrack(words1, words2, dp)
}

// backtrack walks from the bottom-right cell to row or column zero.
func backtrack(words1, words2 []string, dp *pool.Matrix) []string {
	i, j := len(words1), len(words2)
	out := make([]string, 0, dp.At(i, j))

	for i > 0 && j > 0 {
		switch {
		case words1[i-1] == words2[j-1] && dp.At(i, j) == dp.At(i-1, j-1)+1:
			out = append(out, words1[i-1])
			i--
			j--
		case dp.At(i, j) == dp.At(i-1, j):
			i--
		default:
			j--
		}
	}
	return out
}

// Length returns the length of the longest common word subsequence.
func Length(a, b string) int {
	return len(Words(a, b))
}

// Reverse returns a reversed copy of seq, turning backtracking output into
// reading order.
func Reverse(seq []string) []string {
	out := slices.Clone(seq)
	slices.Reverse(out)
	return out
}
