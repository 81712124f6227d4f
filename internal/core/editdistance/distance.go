// Package editdistance computes character-level Levenshtein distance and the
// similarity ratio derived from it.
package editdistance

import "github.com/baditaflorin/go_plagiarism/internal/pool"

// Distance returns the minimum number of single-character insertions,
// deletions or substitutions needed to turn a into b. Characters are Unicode
// code points.
func Distance(a, b string) int {
	return distanceRunes([]rune(a), []rune(b))
}

func distanceRunes(ra, rb []rune) int {
	la, lb := len(ra), len(rb)

	dp := pool.Shared.Get(la+1, lb+1)
	defer pool.Shared.Put(dp)

	for i := 0; i <= la; i++ {
		dp.Set(i, 0, i)
	}
	for j := 0; j <= lb; j++ {
		dp.Set(0, j, j)
	}

	for i := 1; i <= la; i++ {
		prev := dp.Row(i - 1)
		curr := dp.Row(i)
		for j := 1; j <= lb; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
	}

	return dp.At(la, lb)
}

// Similarity returns 1 - Distance(a, b)/max(len(a), len(b)), a score in
// [0, 1]. Two empty strings are identical and score 1.
func Similarity(a, b string) float64 {
	score, _ := SimilarityWithDistance(a, b)
	return score
}

// SimilarityWithDistance returns the similarity ratio together with the
// underlying edit distance.
func SimilarityWithDistance(a, b string) (float64, int) {
	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1.0, 0
	}
	d := distanceRunes(ra, rb)
	return 1.0 - float64(d)/float64(maxLen), d
}
