package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadReader(t *testing.T) {
	src, err := LoadReader("pasted", strings.NewReader("listen\r\n  silent  \n\n\tenlist\n"))
	require.NoError(t, err)
	assert.Equal(t, "pasted", src.Name)
	assert.True(t, src.Enabled)
	assert.Equal(t, []string{"listen", "silent", "enlist"}, src.Lines)

	_, err = LoadReader("", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrEmptySourceName)
}

func TestLoadFileText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "TEAM\nmeat\n\nmate\n")

	src, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "words.txt", src.Name)
	assert.Equal(t, []string{"TEAM", "meat", "mate"}, src.Lines)
}

func TestLoadFileHunspell(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "en.dic", "4\nlisten/SM\nsilent\nenlist/DSG\tpo:verb\nstone/M\n")

	src, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"listen", "silent", "enlist", "stone"}, src.Lines)
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(writeFile(t, dir, "words.csv", "a,b\n"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, dir, "bad.dic", "not-a-count\nword\n"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, dir, "empty.txt", ""))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "MEAT\n")
	writeFile(t, dir, "a.lst", "TEAM\n")
	writeFile(t, dir, "c.dic", "1\nMATE/S\n")
	writeFile(t, dir, "notes.md", "# ignored\n")
	writeFile(t, dir, "empty.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	sources, err := LoadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, src := range sources {
		names = append(names, src.Name)
	}
	assert.Equal(t, []string{"a.lst", "b.txt", "c.dic"}, names)

	idx := Rebuild(sources)
	assert.Equal(t, []string{"TEAM", "MEAT", "MATE"}, idx.AllWords())

	_, err = LoadDir(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestDetectFileFormat(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		content string
		want    FileFormat
	}{
		{"words.txt", "A\n", FormatText},
		{"WORDS.TXT", "A\n", FormatText},
		{"words.lst", "A\n", FormatList},
		{"words.list", "A\n", FormatList},
		{"words.dic", "1\nA\n", FormatHunspell},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			format, err := DetectFileFormat(writeFile(t, dir, tc.name, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.want, format)
		})
	}

	_, err := DetectFileFormat(writeFile(t, dir, "words.bin", "A\n"))
	assert.Error(t, err)
	assert.True(t, IsSupportedFile("x.DIC"))
	assert.False(t, IsSupportedFile("x.bin"))
}
