package search

import (
	"sort"
	"strings"
)

// Kind tags how a result relates to the input letters.
type Kind int

const (
	// KindExact is a single word using exactly the input letters.
	KindExact Kind = iota
	// KindPartial is a single word using a subset of the input letters.
	KindPartial
	// KindPairExact is a pair of words using exactly the input letters together.
	KindPairExact
)

// String returns the label used in exports and the CLI.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "1-word exact"
	case KindPartial:
		return "1-word partial"
	case KindPairExact:
		return "2-word exact"
	default:
		return "unknown"
	}
}

// Code returns a short stable identifier for wire formats.
func (k Kind) Code() string {
	switch k {
	case KindExact:
		return "exact"
	case KindPartial:
		return "partial"
	case KindPairExact:
		return "pair"
	default:
		return "unknown"
	}
}

// Result is one ranked match. Pairs hold their two words in canonical
// (lexicographic) order. Results are never modified after a search returns them.
type Result struct {
	Kind   Kind
	Words  []string
	Length int
}

// Candidate returns the words joined by a single space.
func (r Result) Candidate() string {
	return strings.Join(r.Words, " ")
}

func single(kind Kind, word string) Result {
	return Result{Kind: kind, Words: []string{word}, Length: len(word)}
}

func pair(a, b string) Result {
	if b < a {
		a, b = b, a
	}
	return Result{Kind: KindPairExact, Words: []string{a, b}, Length: len(a) + len(b)}
}

// sortSingles orders exact before partial, longer before shorter,
// then ascending lexicographic.
func sortSingles(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Length != b.Length {
			return a.Length > b.Length
		}
		return a.Words[0] < b.Words[0]
	})
}

// sortPairs orders by combined length descending, then by canonical pair string.
func sortPairs(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Length != b.Length {
			return a.Length > b.Length
		}
		return a.Candidate() < b.Candidate()
	})
}

// byLengthThenWord is the first-word beam order: longer first, then lexicographic.
func byLengthThenWord(words []string) {
	sort.SliceStable(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
}
