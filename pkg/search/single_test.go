package search

import (
	"testing"

	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/letters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(words ...string) *dictionary.Index {
	return dictionary.Rebuild([]dictionary.Source{dictionary.NewSource("test", words)})
}

func words(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Candidate()
	}
	return out
}

func ofKind(results []Result, kind Kind) []string {
	var out []string
	for _, r := range results {
		if r.Kind == kind {
			out = append(out, r.Candidate())
		}
	}
	return out
}

func TestSingleListen(t *testing.T) {
	idx := indexOf("LISTEN", "SILENT", "ENLIST", "STONE", "NOTES")

	results, err := Single(idx, "LISTEN", filter.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"ENLIST", "LISTEN", "SILENT"}, ofKind(results, KindExact))
	assert.Empty(t, ofKind(results, KindPartial), "STONE and NOTES need an O")
}

func TestSingleOrdering(t *testing.T) {
	idx := indexOf("TEA", "MATE", "EAT", "TEAM", "ME", "AT", "TAME", "MAT", "TEAMS", "META")

	results, err := Single(idx, "TEAM", filter.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"MATE", "META", "TAME", "TEAM", // exact, lexicographic
		"EAT", "MAT", "TEA", // partial, longer first
		"AT", "ME",
	}, words(results))
	for i, r := range results {
		if i < 4 {
			assert.Equal(t, KindExact, r.Kind, r.Candidate())
		} else {
			assert.Equal(t, KindPartial, r.Kind, r.Candidate())
		}
		assert.Equal(t, len(r.Words[0]), r.Length)
	}
}

func TestSingleProperties(t *testing.T) {
	idx := dictionary.Rebuild([]dictionary.Source{
		dictionary.Builtin(),
		dictionary.NewSource("extra", []string{"TEARS", "STARE", "RATES", "ASTER", "TEA", "EAT", "SEAT", "EAST", "ARE", "EARS"}),
	})

	for _, input := range []string{"TEARS", "LISTEN", "APPLE", "TEAMRATE", "Q"} {
		t.Run(input, func(t *testing.T) {
			results, err := Single(idx, input, filter.Default())
			require.NoError(t, err)

			have := letters.FromWord(input)
			seen := map[string]bool{}
			for _, r := range results {
				w := r.Words[0]
				assert.False(t, seen[w], "duplicate %s", w)
				seen[w] = true

				freq, ok := idx.FrequencyOf(w)
				require.True(t, ok)
				assert.True(t, letters.CanCover(freq, have), w)
				if r.Kind == KindExact {
					assert.Equal(t, letters.Signature(input), letters.Signature(w))
				}
			}
		})
	}
}

func TestSingleFilters(t *testing.T) {
	idx := indexOf("TEARS", "STARE", "RATES", "ASTER", "TEA", "EAT", "SEAT", "EAST", "ARE", "EARS")

	testCases := []struct {
		description string
		spec        filter.Spec
		want        []string
	}{
		{"min length", filter.Spec{MinLen: 4}, []string{"ASTER", "RATES", "STARE", "TEARS", "EARS", "EAST", "SEAT"}},
		{"prefix", filter.Spec{Prefix: "ea"}, []string{"EARS", "EAST", "EAT"}},
		{"suffix", filter.Spec{Suffix: "S"}, []string{"RATES", "TEARS", "EARS"}},
		{"contains", filter.Spec{Contains: "TE"}, []string{"ASTER", "RATES", "TEARS", "TEA"}},
		{"exclude", filter.Spec{MustExclude: "S"}, []string{"ARE", "EAT", "TEA"}},
		{"include", filter.Spec{MustInclude: "RS"}, []string{"ASTER", "RATES", "STARE", "TEARS", "EARS"}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			results, err := Single(idx, "TEARS", tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, words(results))
		})
	}
}

func TestSingleExactFilteredOut(t *testing.T) {
	idx := indexOf("LISTEN", "SILENT", "LIST")

	results, err := Single(idx, "LISTEN", filter.Spec{Prefix: "LI"})
	require.NoError(t, err)
	assert.Equal(t, []string{"LISTEN", "LIST"}, words(results))
	assert.Equal(t, KindExact, results[0].Kind)
	assert.Equal(t, KindPartial, results[1].Kind)
}

func TestSingleInvalidInput(t *testing.T) {
	idx := indexOf("LISTEN")

	testCases := []struct {
		description string
		input       string
		spec        filter.Spec
	}{
		{"empty", "", filter.Default()},
		{"lowercase", "listen", filter.Default()},
		{"spaces", "LIS TEN", filter.Default()},
		{"over max length", "LISTEN", filter.Spec{MaxLen: 5}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			results, err := Single(idx, tc.input, tc.spec)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, results)
		})
	}

	// exactly at the bound is fine
	_, err := Single(idx, "LISTEN", filter.Spec{MaxLen: 6})
	assert.NoError(t, err)
}

func TestSingleNoMatchIsNotAnError(t *testing.T) {
	results, err := Single(indexOf("LISTEN"), "QZX", filter.Default())
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results, err = Single(dictionary.Rebuild(nil), "QZX", filter.Default())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSingleStable(t *testing.T) {
	idx := dictionary.Rebuild([]dictionary.Source{dictionary.Builtin()})

	first, err := Single(idx, "PALESTINE", filter.Default())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Single(idx, "PALESTINE", filter.Default())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func BenchmarkSingle(b *testing.B) {
	idx := dictionary.Rebuild([]dictionary.Source{dictionary.Builtin()})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Single(idx, "TEAMRATELISTEN", filter.Default())
	}
}
