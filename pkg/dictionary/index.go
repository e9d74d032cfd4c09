/*
Package dictionary builds the word index the anagram matchers search.

The effective dictionary is the deduplicated union of every enabled Source,
in source-then-line order, first occurrence wins. Each retained word gets a
cached letter vector, a slot in its signature bucket (exact anagram classes)
and an entry in a patricia trie used to narrow prefix-filtered scans.

An Index is immutable once built. Changing the set of sources means building
a new Index with Rebuild, the Library does that and swaps the result in.
*/
package dictionary

import (
	"sort"

	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/letters"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is an immutable snapshot of the effective dictionary.
type Index struct {
	words   []string
	bySig   map[string][]string
	freqs   map[string]letters.Vector
	trie    *patricia.Trie
	sources []string
	maxLen  int
}

// Rebuild builds a fresh Index from the enabled sources, in the given order.
// Lines are normalized (non-letters stripped, upper-cased); empty results and
// words already seen are dropped. Rebuilding twice from the same sources
// yields identical word order and map contents.
func Rebuild(sources []Source) *Index {
	total := 0
	for _, src := range sources {
		if src.Enabled {
			total += len(src.Lines)
		}
	}

	idx := &Index{
		words: make([]string, 0, total),
		bySig: make(map[string][]string, total),
		freqs: make(map[string]letters.Vector, total),
		trie:  patricia.NewTrie(),
	}
	seen := utils.NewSeenSet(total)

	for _, src := range sources {
		if !src.Enabled {
			continue
		}
		idx.sources = append(idx.sources, src.Name)
		for _, raw := range src.Lines {
			w := letters.Sanitize(raw)
			if w == "" || !seen.ShouldInclude(w) {
				continue
			}
			idx.add(w)
		}
	}

	log.Debugf("Index rebuilt: %d words, %d signatures, %d enabled sources",
		len(idx.words), len(idx.bySig), len(idx.sources))
	return idx
}

// add registers a new, already normalized and deduplicated word.
func (idx *Index) add(w string) {
	ordinal := len(idx.words)
	idx.words = append(idx.words, w)

	sig := letters.Signature(w)
	idx.bySig[sig] = append(idx.bySig[sig], w)
	idx.freqs[w] = letters.FromWord(w)
	idx.trie.Insert(patricia.Prefix(w), ordinal)

	if len(w) > idx.maxLen {
		idx.maxLen = len(w)
	}
}

// WordsBySignature returns the words sharing sig, in insertion order.
// The result is empty (never nil) when no word has that signature.
func (idx *Index) WordsBySignature(sig string) []string {
	bucket := idx.bySig[sig]
	out := make([]string, len(bucket))
	copy(out, bucket)
	return out
}

// AllWords returns the whole effective dictionary in insertion order.
func (idx *Index) AllWords() []string {
	out := make([]string, len(idx.words))
	copy(out, idx.words)
	return out
}

// FrequencyOf returns the cached letter vector of w.
func (idx *Index) FrequencyOf(w string) (letters.Vector, bool) {
	v, ok := idx.freqs[w]
	return v, ok
}

// Scan visits every word with its cached vector, in insertion order,
// until fn returns false.
func (idx *Index) Scan(fn func(word string, freq letters.Vector) bool) {
	for _, w := range idx.words {
		if !fn(w, idx.freqs[w]) {
			return
		}
	}
}

// WithPrefix returns the words starting with prefix, in insertion order.
// An empty prefix yields every word.
func (idx *Index) WithPrefix(prefix string) []string {
	if prefix == "" {
		return idx.AllWords()
	}

	var ordinals []int
	err := idx.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		ordinals = append(ordinals, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []string{}
	}

	sort.Ints(ordinals)
	out := make([]string, len(ordinals))
	for i, o := range ordinals {
		out[i] = idx.words[o]
	}
	return out
}

// ScanPrefix is Scan restricted to words starting with prefix.
func (idx *Index) ScanPrefix(prefix string, fn func(word string, freq letters.Vector) bool) {
	if prefix == "" {
		idx.Scan(fn)
		return
	}
	for _, w := range idx.WithPrefix(prefix) {
		if !fn(w, idx.freqs[w]) {
			return
		}
	}
}

// Contains reports whether w is part of the effective dictionary.
func (idx *Index) Contains(w string) bool {
	_, ok := idx.freqs[w]
	return ok
}

// Len returns the number of distinct words.
func (idx *Index) Len() int {
	return len(idx.words)
}

// MaxWordLen returns the length of the longest word.
func (idx *Index) MaxWordLen() int {
	return idx.maxLen
}

// SourceNames returns the names of the sources that fed this index.
func (idx *Index) SourceNames() []string {
	out := make([]string, len(idx.sources))
	copy(out, idx.sources)
	return out
}

// Stats returns basic numbers about the index.
func (idx *Index) Stats() map[string]int {
	return map[string]int{
		"totalWords":     len(idx.words),
		"signatures":     len(idx.bySig),
		"enabledSources": len(idx.sources),
		"maxWordLen":     idx.maxLen,
	}
}
