package domain

// Document is a named input text together with its normalized form.
// A Document is treated as immutable once Normalized is set.
type Document struct {
	ID         string
	Text       string
	Normalized string
}

// MatchResult holds the outcome of comparing two documents.
type MatchResult struct {
	Left       string
	Right      string
	LeftIndex  int
	RightIndex int
	// Similarity is the edit-distance similarity ratio in [0, 1].
	Similarity   float64
	EditDistance int
	// Sequence is the longest common word subsequence in reverse discovery
	// order (last matched word first).
	Sequence    []string
	Plagiarized bool
}

// SequenceLength returns the number of matched words.
func (r MatchResult) SequenceLength() int {
	return len(r.Sequence)
}
