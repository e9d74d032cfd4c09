package utils

// SeenSet remembers which words were already emitted, by exact string equality.
// It is not safe for concurrent use; each rebuild or search owns its own.
type SeenSet struct {
	seenWords map[string]struct{}
}

// NewSeenSet creates an empty set sized for roughly n words.
func NewSeenSet(n int) *SeenSet {
	return &SeenSet{seenWords: make(map[string]struct{}, n)}
}

// ShouldInclude reports whether word is new, and records it.
// Returns false if the word was seen before.
func (s *SeenSet) ShouldInclude(word string) bool {
	if _, ok := s.seenWords[word]; ok {
		return false
	}
	s.seenWords[word] = struct{}{}
	return true
}

// Has reports whether word was recorded, without recording it.
func (s *SeenSet) Has(word string) bool {
	_, ok := s.seenWords[word]
	return ok
}

// Len returns how many distinct words were recorded.
func (s *SeenSet) Len() int {
	return len(s.seenWords)
}
