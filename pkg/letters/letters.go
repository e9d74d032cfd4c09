// Package letters models words as fixed 26-slot letter counts over A-Z.
package letters

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Size is the number of slots in a Vector, one per letter A-Z.
const Size = 26

// Vector counts how many times each letter A-Z occurs.
// Slot 0 is 'A', slot 25 is 'Z'.
type Vector [Size]int

// FromWord counts the letters of w. Bytes outside A-Z are ignored.
func FromWord(w string) Vector {
	var v Vector
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c >= 'A' && c <= 'Z' {
			v[c-'A']++
		}
	}
	return v
}

// CanCover reports whether need can be spelled from have,
// i.e. need[i] <= have[i] for every letter.
func CanCover(need, have Vector) bool {
	for i := 0; i < Size; i++ {
		if need[i] > have[i] {
			return false
		}
	}
	return true
}

// Subtract returns a - b component-wise.
// The result is not clamped: call it only once CanCover(b, a) holds.
func Subtract(a, b Vector) Vector {
	var out Vector
	for i := 0; i < Size; i++ {
		out[i] = a[i] - b[i]
	}
	return out
}

// IsZero reports whether every slot of v is 0.
func IsZero(v Vector) bool {
	for i := 0; i < Size; i++ {
		if v[i] != 0 {
			return false
		}
	}
	return true
}

// Len returns the total number of letters counted by v.
func (v Vector) Len() int {
	n := 0
	for i := 0; i < Size; i++ {
		n += v[i]
	}
	return n
}

// Negative reports whether any slot of v went below zero.
func (v Vector) Negative() bool {
	for i := 0; i < Size; i++ {
		if v[i] < 0 {
			return true
		}
	}
	return false
}

// String renders v back as its letters in ascending order.
func (v Vector) String() string {
	var b strings.Builder
	for i := 0; i < Size; i++ {
		for n := 0; n < v[i]; n++ {
			b.WriteByte(byte('A' + i))
		}
	}
	return b.String()
}

// Signature sorts the letters of w ascending.
// Two words share a signature iff they are exact anagrams.
func Signature(w string) string {
	b := []byte(w)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// Sanitize upper-cases s with full Unicode case mapping (so "ß" becomes
// "SS") and drops everything that is not A-Z.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	// a Caser keeps state, so each call gets its own
	for _, r := range cases.Upper(language.Und).String(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether s is non-empty and made only of A-Z.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
