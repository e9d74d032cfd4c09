package search

import (
	"fmt"

	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/letters"
	"github.com/charmbracelet/log"
)

const (
	// DefaultBeamWidth is the first-word beam used when callers have no preference.
	DefaultBeamWidth = 200
	// DefaultResultCap is the pair cap used when callers have no preference.
	DefaultResultCap = 200
)

// Pairs returns two-word combinations whose letters, together, are exactly
// the input letters. Both words must pass spec.
//
// The search is a bounded heuristic and is NOT exhaustive:
//
//  1. first words are the dictionary words covered by input, ranked longer
//     first then lexicographically, and only the top beamWidth are kept;
//  2. for each of them, the dictionary is scanned in order for a second word
//     that consumes the remaining letters exactly;
//  3. the search stops as soon as resultCap distinct pairs are found.
//
// So only pairs reachable from the beam are found, and at most resultCap of
// them. A wide beam approaches an exhaustive search; a narrow one is faster.
// A word may pair with itself when its letters fit twice.
//
// Pairs are canonical (words sorted) and unique in either order. Results are
// ordered by combined length descending, then by the "A B" pair string.
// input must be uppercase A-Z and no longer than 2*spec.MaxLen; beamWidth and
// resultCap must be at least 1. Otherwise ErrInvalidInput is returned.
func Pairs(idx *dictionary.Index, input string, spec filter.Spec, beamWidth, resultCap int) ([]Result, error) {
	spec, err := prepare(input, spec, func(s filter.Spec) int { return 2 * s.MaxLen })
	if err != nil {
		return nil, err
	}
	if beamWidth < 1 {
		return nil, fmt.Errorf("%w: beam width must be at least 1, got %d", ErrInvalidInput, beamWidth)
	}
	if resultCap < 1 {
		return nil, fmt.Errorf("%w: result cap must be at least 1, got %d", ErrInvalidInput, resultCap)
	}

	have := letters.FromWord(input)

	beam := firstWords(idx, have, spec)
	if len(beam) > beamWidth {
		beam = beam[:beamWidth]
	}

	keys := make(map[string]struct{}, resultCap)
	results := make([]Result, 0)

	for _, w1 := range beam {
		freq1, _ := idx.FrequencyOf(w1)
		rem := letters.Subtract(have, freq1)
		need := rem.Len()
		if need == 0 {
			continue
		}

		idx.ScanPrefix(spec.Prefix, func(w2 string, freq2 letters.Vector) bool {
			if len(w2) != need || !letters.CanCover(freq2, rem) || !filter.Passes(w2, spec) {
				return true
			}
			if !letters.IsZero(letters.Subtract(rem, freq2)) {
				return true
			}
			r := pair(w1, w2)
			key := r.Candidate()
			if _, dup := keys[key]; dup {
				return true
			}
			keys[key] = struct{}{}
			results = append(results, r)
			return len(results) < resultCap
		})

		if len(results) >= resultCap {
			break
		}
	}

	sortPairs(results)
	log.Debugf("Pair search %q: beam=%d, %d pairs (cap %d)", input, len(beam), len(results), resultCap)
	return results, nil
}

// firstWords collects the first-word candidates in beam order.
func firstWords(idx *dictionary.Index, have letters.Vector, spec filter.Spec) []string {
	var cands []string
	idx.ScanPrefix(spec.Prefix, func(w string, freq letters.Vector) bool {
		if letters.CanCover(freq, have) && filter.Passes(w, spec) {
			cands = append(cands, w)
		}
		return true
	})
	byLengthThenWord(cands)
	return cands
}
