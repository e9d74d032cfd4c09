package search

import (
	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/letters"
	"github.com/charmbracelet/log"
)

// Single returns every dictionary word that passes spec and is either an
// exact anagram of input (KindExact) or spelled from a subset of its letters
// (KindPartial). A word qualifying as both is reported once, as exact.
//
// Results are ordered exact first, then longer before shorter, then
// lexicographically. input must be uppercase A-Z and no longer than
// spec.MaxLen, otherwise ErrInvalidInput is returned and nothing is scanned.
func Single(idx *dictionary.Index, input string, spec filter.Spec) ([]Result, error) {
	spec, err := prepare(input, spec, func(s filter.Spec) int { return s.MaxLen })
	if err != nil {
		return nil, err
	}
	return scanSingles(idx, input, spec), nil
}

// scanSingles does the work of Single without the length bound on input.
// spec must already be normalized and input must be A-Z.
func scanSingles(idx *dictionary.Index, input string, spec filter.Spec) []Result {
	have := letters.FromWord(input)
	seen := utils.NewSeenSet(16)
	results := make([]Result, 0)

	// every word in the signature bucket is a rearrangement of input
	for _, w := range idx.WordsBySignature(letters.Signature(input)) {
		if !filter.Passes(w, spec) {
			continue
		}
		if seen.ShouldInclude(w) {
			results = append(results, single(KindExact, w))
		}
	}
	exact := len(results)

	idx.ScanPrefix(spec.Prefix, func(w string, freq letters.Vector) bool {
		if seen.Has(w) || !letters.CanCover(freq, have) || !filter.Passes(w, spec) {
			return true
		}
		seen.ShouldInclude(w)
		results = append(results, single(KindPartial, w))
		return true
	})

	sortSingles(results)
	log.Debugf("Single search %q: %d exact, %d partial", input, exact, len(results)-exact)
	return results
}
