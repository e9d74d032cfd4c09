package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single line in a word list.
const maxLineSize = 1024 * 1024

// LoadReader reads one candidate word per line from r.
// Surrounding whitespace is trimmed and blank lines are dropped; everything
// else is kept raw for Rebuild to normalize.
func LoadReader(name string, r io.Reader) (Source, error) {
	if name == "" {
		return Source{}, ErrEmptySourceName
	}
	lines, err := readLines(r, FormatText)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read source %s: %w", name, err)
	}
	return NewSource(name, lines), nil
}

// LoadFile loads a word list file. The source is named after the file.
func LoadFile(path string) (Source, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return Source{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	lines, err := readLines(file, format)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Loaded %s (%s): %d lines", path, format, len(lines))
	return NewSource(filepath.Base(path), lines), nil
}

// LoadDir loads every supported word list in dir, sorted by file name.
// Files that fail to load are skipped with a warning.
func LoadDir(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for word lists: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupportedFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		src, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warnf("Skipping word list %s: %v", name, err)
			continue
		}
		sources = append(sources, src)
	}

	log.Debugf("Found %d word lists in %s", len(sources), dir)
	return sources, nil
}

// readLines splits r into trimmed, non-empty lines according to format.
func readLines(r io.Reader, format FileFormat) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if format == FormatHunspell {
			if first {
				// entry count header
				first = false
				continue
			}
			if fields := strings.Fields(line); len(fields) > 0 {
				line = fields[0]
			}
			if slash := strings.IndexByte(line, '/'); slash >= 0 {
				line = line[:slash]
			}
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
