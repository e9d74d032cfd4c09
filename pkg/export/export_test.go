package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func sampleRows(t *testing.T) []Row {
	idx := dictionary.Rebuild([]dictionary.Source{
		dictionary.NewSource("test", []string{"TEAM", "MATE", "TEA", "RATE", "TEAR"}),
	})
	singles, err := search.Single(idx, "TEAM", filter.Default())
	require.NoError(t, err)
	pairs, err := search.Pairs(idx, "TEAMRATE", filter.Default(), 10, 10)
	require.NoError(t, err)
	return Rows(singles, pairs)
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"JSON", FormatJSON, false},
		{" msgpack ", FormatMsgpack, false},
		{"mp", FormatMsgpack, false},
		{"xml", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, ".msgpack", FormatMsgpack.Extension())
	assert.Equal(t, ".csv", FormatCSV.Extension())
}

func TestRowsSinglesThenPairs(t *testing.T) {
	rows := sampleRows(t)

	require.Len(t, rows, 7)
	assert.Equal(t, Row{Rank: 1, Candidate: "MATE", Type: "1-word exact", Length: 4}, rows[0])
	assert.Equal(t, Row{Rank: 2, Candidate: "TEAM", Type: "1-word exact", Length: 4}, rows[1])
	assert.Equal(t, Row{Rank: 3, Candidate: "TEA", Type: "1-word partial", Length: 3}, rows[2])
	assert.Equal(t, Row{Rank: 4, Candidate: "MATE RATE", Type: "2-word exact", Length: 8}, rows[3])
	assert.Equal(t, 7, rows[6].Rank)
	assert.Equal(t, "RATE TEAM", rows[5].Candidate)
	assert.Equal(t, "TEAM TEAR", rows[6].Candidate)
}

func TestRowsRanksPastUint16(t *testing.T) {
	const n = 70000
	singles := make([]search.Result, n)
	for i := range singles {
		singles[i] = search.Result{Kind: search.KindPartial, Words: []string{"TEA"}, Length: 3}
	}
	pairs := []search.Result{{Kind: search.KindPairExact, Words: []string{"MATE", "RATE"}, Length: 8}}

	rows := Rows(singles, pairs)
	require.Len(t, rows, n+1)
	assert.Equal(t, 65535, rows[65534].Rank)
	assert.Equal(t, 65536, rows[65535].Rank)
	assert.Equal(t, 65537, rows[65536].Rank)
	assert.Equal(t, n+1, rows[n].Rank)
	assert.Equal(t, "MATE RATE", rows[n].Candidate)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleRows(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "rank,candidate,type,length", lines[0])
	assert.Equal(t, "1,MATE,1-word exact,4", lines[1])
	assert.Equal(t, "4,MATE RATE,2-word exact,8", lines[4])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	rows := sampleRows(t)
	require.NoError(t, Write(&buf, FormatJSON, rows))

	var decoded []Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rows, decoded)
	assert.Contains(t, buf.String(), "\n  {")

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteMsgpack(t *testing.T) {
	var buf bytes.Buffer
	rows := sampleRows(t)
	require.NoError(t, Write(&buf, FormatMsgpack, rows))

	var decoded []Row
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rows, decoded)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, Format(42), nil), ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anagram_results.csv")
	require.NoError(t, WriteFile(path, FormatCSV, sampleRows(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "rank,candidate,type,length\n"))

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "x.csv"), FormatCSV, nil)
	assert.Error(t, err)
}
