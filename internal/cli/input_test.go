package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
)

type memStore map[string]bool

func (m memStore) SetEnabled(name string, enabled bool) error {
	m[name] = enabled
	return nil
}

func runScript(t *testing.T, opts Options, lines ...string) (string, *InputHandler) {
	t.Helper()
	lib, err := dictionary.NewLibrary(dictionary.Builtin(), dictionary.NewSource("extra", []string{"TO"}))
	require.NoError(t, err)

	var out bytes.Buffer
	h := NewInputHandlerIO(lib, opts, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, h.Start())
	return out.String(), h
}

func TestSingleQuery(t *testing.T) {
	out, h := runScript(t, Options{Filter: filter.Default()}, "listen!")

	assert.Contains(t, out, "LISTEN: 4 single, 0 pairs")
	for _, w := range []string{"ENLIST", "INLETS", "LISTEN", "SILENT"} {
		assert.Contains(t, out, w)
	}
	assert.Contains(t, out, "1-word exact")
	assert.Len(t, h.lastSingles, 4)
	assert.Nil(t, h.lastPairs)
}

func TestPairsAndLimit(t *testing.T) {
	out, h := runScript(t, Options{Filter: filter.Default(), Limit: 2}, ":pairs", ":cap 5", "TEAMRATE")

	assert.Contains(t, out, "pairs: true")
	assert.Contains(t, out, "TEAMRATE: 7 single, 5 pairs")
	assert.Contains(t, out, "... 5 more")
	assert.Contains(t, out, "... 3 more")
	assert.Contains(t, out, "2-word exact")
	assert.Len(t, h.lastPairs, 5)
}

func TestFilterCommands(t *testing.T) {
	_, h := runScript(t, Options{Filter: filter.Default()},
		":min 3", ":max 0", ":prefix t", ":suffix e", ":contains am", ":include M", ":exclude xz", ":beam 0")

	assert.Equal(t, filter.Spec{
		MinLen: 3, MaxLen: 99, Prefix: "T", Suffix: "E", Contains: "AM", MustInclude: "M", MustExclude: "XZ",
	}, h.spec)
	assert.Equal(t, 1, h.opts.BeamWidth)

	_, h = runScript(t, Options{Filter: filter.Default()}, ":prefix T", ":prefix", ":min 5", ":clear")
	assert.Equal(t, filter.Default(), h.spec)
}

func TestClearKeepsStartingBounds(t *testing.T) {
	start := filter.Spec{MinLen: 3, MaxLen: 6, MustExclude: "q"}
	out, h := runScript(t, Options{Filter: start}, ":min 1", ":max 9", ":prefix T", ":clear", "TEAM")

	assert.Equal(t, filter.Spec{MinLen: 3, MaxLen: 6, MustExclude: "Q"}, h.spec)
	assert.Contains(t, out, "TEAM: 4 single, 0 pairs")
}

func TestCommandErrors(t *testing.T) {
	out, _ := runScript(t, Options{}, ":min x", ":bogus", ":toggle", ":toggle ghost", ":export csv", ":export xml out", ":export csv out.csv", ":")

	assert.Contains(t, out, "usage: :min N")
	assert.Contains(t, out, "unknown command :bogus")
	assert.Contains(t, out, "usage: :toggle NAME")
	assert.Contains(t, out, "source not found")
	assert.Contains(t, out, "usage: :export FORMAT PATH")
	assert.Contains(t, out, "unknown export format")
	assert.Contains(t, out, "nothing to export yet")
}

func TestSourcesAndToggle(t *testing.T) {
	store := memStore{}
	out, _ := runScript(t, Options{Filter: filter.Default(), Store: store},
		":sources", ":toggle builtin", "LISTEN", ":pairs", "TOTO")

	assert.Contains(t, out, "2/2 sources enabled, 20 words")
	assert.Contains(t, out, "builtin: enabled=false")
	assert.Contains(t, out, "No anagrams found for 'LISTEN'")
	assert.Contains(t, out, "TO TO")
	assert.Equal(t, memStore{"builtin": false}, store)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	out, _ := runScript(t, Options{Filter: filter.Default()}, "TEAM", ":export json "+path)

	assert.Contains(t, out, "exported 4 rows")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"candidate": "MATE"`)
}

func TestInvalidInput(t *testing.T) {
	out, _ := runScript(t, Options{Filter: filter.Spec{MaxLen: 3}}, "123", "LISTEN")

	assert.Contains(t, out, `no letters in "123"`)
	assert.Contains(t, out, "invalid input")
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "999", formatWithCommas(999))
	assert.Equal(t, "1,000", formatWithCommas(1000))
	assert.Equal(t, "1,234,567", formatWithCommas(1234567))
}
