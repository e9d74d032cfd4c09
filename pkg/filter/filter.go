/*
Package filter holds the per-word constraints applied to every anagram candidate.

A Spec is a conjunction of literal checks: length bounds, prefix, suffix,
substring, and letter sets that must (or must not) appear. Empty fields mean
"no constraint". Matching is literal and case-normalized, there are no
regular expressions involved.
*/
package filter

import (
	"strings"

	"github.com/bastiangx/wordhunt/pkg/letters"
)

const (
	// DefaultMinLen is used when no (or a non-positive) minimum is given.
	DefaultMinLen = 1
	// DefaultMaxLen is used when no (or a non-positive) maximum is given.
	DefaultMaxLen = 99
)

// Spec describes which candidate words are acceptable.
type Spec struct {
	MinLen      int    `msgpack:"min,omitempty" json:"min_len,omitempty" toml:"min_len"`
	MaxLen      int    `msgpack:"max,omitempty" json:"max_len,omitempty" toml:"max_len"`
	Prefix      string `msgpack:"sw,omitempty" json:"prefix,omitempty" toml:"prefix"`
	Suffix      string `msgpack:"ew,omitempty" json:"suffix,omitempty" toml:"suffix"`
	Contains    string `msgpack:"in,omitempty" json:"contains,omitempty" toml:"contains"`
	MustInclude string `msgpack:"inc,omitempty" json:"must_include,omitempty" toml:"must_include"`
	MustExclude string `msgpack:"exc,omitempty" json:"must_exclude,omitempty" toml:"must_exclude"`
}

// Default returns a Spec with no constraints besides the default length bounds.
func Default() Spec {
	return Spec{MinLen: DefaultMinLen, MaxLen: DefaultMaxLen}
}

// Normalize returns a copy with every text field sanitized to A-Z
// and the length bounds clamped so that 1 <= MinLen <= MaxLen.
func (s Spec) Normalize() Spec {
	out := Spec{
		MinLen:      s.MinLen,
		MaxLen:      s.MaxLen,
		Prefix:      letters.Sanitize(s.Prefix),
		Suffix:      letters.Sanitize(s.Suffix),
		Contains:    letters.Sanitize(s.Contains),
		MustInclude: letters.Sanitize(s.MustInclude),
		MustExclude: letters.Sanitize(s.MustExclude),
	}
	if out.MinLen < DefaultMinLen {
		out.MinLen = DefaultMinLen
	}
	if out.MaxLen <= 0 {
		out.MaxLen = DefaultMaxLen
	}
	if out.MaxLen < out.MinLen {
		out.MaxLen = out.MinLen
	}
	return out
}

// Passes reports whether word satisfies every constraint of s.
// word is expected to be a normalized dictionary word (A-Z only).
func Passes(word string, s Spec) bool {
	if len(word) < s.MinLen || len(word) > s.MaxLen {
		return false
	}
	for i := 0; i < len(s.MustInclude); i++ {
		if strings.IndexByte(word, s.MustInclude[i]) < 0 {
			return false
		}
	}
	for i := 0; i < len(s.MustExclude); i++ {
		if strings.IndexByte(word, s.MustExclude[i]) >= 0 {
			return false
		}
	}
	if s.Prefix != "" && !strings.HasPrefix(word, s.Prefix) {
		return false
	}
	if s.Suffix != "" && !strings.HasSuffix(word, s.Suffix) {
		return false
	}
	if s.Contains != "" && !strings.Contains(word, s.Contains) {
		return false
	}
	return true
}

// Predicate binds s into a reusable check.
func (s Spec) Predicate() func(string) bool {
	return func(word string) bool { return Passes(word, s) }
}

// IsZero reports whether s carries no text constraints at all.
func (s Spec) IsZero() bool {
	return s.Prefix == "" && s.Suffix == "" && s.Contains == "" &&
		s.MustInclude == "" && s.MustExclude == ""
}
