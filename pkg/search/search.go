/*
Package search implements the anagram matchers over a dictionary.Index.

Single finds words that are exact anagrams of the input letters, or that can
be spelled from a subset of them. Pairs finds two-word combinations that use
the input letters exactly, with a bounded beam search.

Both matchers are pure functions of (index, letters, filter, bounds): they
never mutate the index, run synchronously to completion or to their bound, and
return results in a total, deterministic order. Input is validated before any
work starts; an input that matches nothing yields an empty slice, not an error.
*/
package search

import (
	"fmt"

	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/letters"
)

// validateLetters checks letters against the alphabet and the given bound.
func validateLetters(input string, maxLen int) error {
	if input == "" {
		return fmt.Errorf("%w: letters are empty", ErrInvalidInput)
	}
	if !letters.Valid(input) {
		return fmt.Errorf("%w: letters must be A-Z only, got %q", ErrInvalidInput, input)
	}
	if len(input) > maxLen {
		return fmt.Errorf("%w: %d letters exceed the maximum of %d", ErrInvalidInput, len(input), maxLen)
	}
	return nil
}

// prepare normalizes the filter and validates the input against bound(spec).
func prepare(input string, spec filter.Spec, bound func(filter.Spec) int) (filter.Spec, error) {
	spec = spec.Normalize()
	if err := validateLetters(input, bound(spec)); err != nil {
		return spec, err
	}
	return spec, nil
}
