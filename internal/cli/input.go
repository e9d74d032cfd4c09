// Package cli runs the interactive anagram prompt.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordhunt/internal/logger"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/letters"
	"github.com/bastiangx/wordhunt/pkg/search"
	"github.com/charmbracelet/log"
)

// StateStore remembers source enabled flags between runs.
type StateStore interface {
	SetEnabled(name string, enabled bool) error
}

// Options are the starting query settings of an InputHandler.
type Options struct {
	Filter filter.Spec
	Search search.Options
	// Limit caps the rows printed per result group; 0 prints everything.
	Limit int
	Color bool
	Store StateStore
}

// InputHandler reads letters (or :commands) line by line and prints the
// ranked anagrams for each line. Query settings persist between lines.
type InputHandler struct {
	lib    *dictionary.Library
	spec   filter.Spec
	start  filter.Spec
	opts   search.Options
	limit  int
	store  StateStore
	in     io.Reader
	out    *log.Logger
	styles styles

	lastSingles []search.Result
	lastPairs   []search.Result
}

// NewInputHandler creates a handler on stdin/stdout.
func NewInputHandler(lib *dictionary.Library, opts Options) *InputHandler {
	return NewInputHandlerIO(lib, opts, os.Stdin, os.Stdout)
}

// NewInputHandlerIO creates a handler on the given streams.
func NewInputHandlerIO(lib *dictionary.Library, opts Options, r io.Reader, w io.Writer) *InputHandler {
	if opts.Search.BeamWidth < 1 {
		opts.Search.BeamWidth = search.DefaultBeamWidth
	}
	if opts.Search.ResultCap < 1 {
		opts.Search.ResultCap = search.DefaultResultCap
	}
	spec := opts.Filter.Normalize()
	return &InputHandler{
		lib:    lib,
		spec:   spec,
		start:  spec,
		opts:   opts.Search,
		limit:  opts.Limit,
		store:  opts.Store,
		in:     r,
		out:    logger.NewWithWriter(w, ""),
		styles: newStyles(opts.Color),
	}
}

// Start runs the prompt loop until the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("WordHunt CLI")
	h.out.Print("type letters and press Enter (:help for commands, Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.in)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ":"):
			if err := h.handleCommand(line); err != nil {
				h.out.Errorf("%v", err)
			}
		default:
			if err := h.Query(line); err != nil {
				h.out.Errorf("%v", err)
			}
		}
	}
}

// Query normalizes line to A-Z letters and prints its anagrams.
func (h *InputHandler) Query(line string) error {
	input := letters.Sanitize(line)
	if input == "" {
		return fmt.Errorf("no letters in %q", line)
	}

	start := time.Now()
	singles, pairs, err := search.Run(h.lib.Index(), input, h.spec, h.opts)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	log.Debugf("Took [ %v ] for letters '%s'", elapsed, input)

	h.lastSingles, h.lastPairs = singles, pairs
	h.printResults(input, singles, pairs)
	return nil
}

// Results returns the rows of the last successful query.
func (h *InputHandler) Results() (singles, pairs []search.Result) {
	return h.lastSingles, h.lastPairs
}
