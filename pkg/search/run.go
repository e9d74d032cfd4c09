package search

import (
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
)

// Options selects which matchers Run uses.
type Options struct {
	Pairs     bool
	BeamWidth int
	ResultCap int
}

// DefaultOptions is single-word only with the default pair bounds.
func DefaultOptions() Options {
	return Options{BeamWidth: DefaultBeamWidth, ResultCap: DefaultResultCap}
}

// Run answers one query the way the front ends present it: single-word
// results, then pairs when opts.Pairs is set.
//
// With pairs enabled the input may be up to 2*MaxLen long. Single words are
// still listed then: none can be exact, but every word of at most MaxLen
// letters spelled from the input shows up as partial.
func Run(idx *dictionary.Index, input string, spec filter.Spec, opts Options) (singles, pairs []Result, err error) {
	if !opts.Pairs {
		singles, err = Single(idx, input, spec)
		return singles, nil, err
	}

	pairs, err = Pairs(idx, input, spec, opts.BeamWidth, opts.ResultCap)
	if err != nil {
		return nil, nil, err
	}
	return scanSingles(idx, input, spec.Normalize()), pairs, nil
}
