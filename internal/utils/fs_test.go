package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	type search struct {
		BeamWidth int `toml:"beam_width"`
	}
	require.NoError(t, SaveTOMLFile(map[string]any{"search": search{BeamWidth: 50}}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "beam_width = 50")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	parsed, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	section, ok := ExtractSection(parsed, "search")
	require.True(t, ok)
	beam, ok := ExtractInt64(section, "beam_width")
	require.True(t, ok)
	assert.Equal(t, 50, beam)
}

func TestSaveTOMLFileMissingDir(t *testing.T) {
	err := SaveTOMLFile(map[string]any{"a": 1}, filepath.Join(t.TempDir(), "nope", "config.toml"))
	assert.Error(t, err)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, FileExists(dir))

	result := CheckDirStatus(dir)
	assert.NoError(t, result.Error)
	assert.True(t, result.Exists)
	assert.True(t, result.Writable)
	assert.True(t, FileExists(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetAbsolutePath(t *testing.T) {
	assert.Equal(t, "unknown", GetAbsolutePath(""))
	assert.Equal(t, "/etc/wordhunt.toml", GetAbsolutePath("/etc/wordhunt.toml"))
	assert.True(t, filepath.IsAbs(GetAbsolutePath("config.toml")))
}
