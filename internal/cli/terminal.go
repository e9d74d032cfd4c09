package cli

import (
	"fmt"
	"strconv"

	"github.com/bastiangx/wordhunt/pkg/search"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	word   lipgloss.Style
	header lipgloss.Style
	dim    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{word: lipgloss.NewStyle(), header: lipgloss.NewStyle(), dim: lipgloss.NewStyle()}
	}
	return styles{
		word:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
		dim:    lipgloss.NewStyle().Faint(true),
	}
}

// printResults prints single words then pairs, ranked continuously.
// At most h.limit rows of each group are shown.
func (h *InputHandler) printResults(input string, singles, pairs []search.Result) {
	if len(singles) == 0 && len(pairs) == 0 {
		h.out.Warnf("No anagrams found for '%s'", input)
		return
	}

	h.out.Print(h.styles.header.Render(fmt.Sprintf("%s: %d single, %d pairs", input, len(singles), len(pairs))))
	rank := 1
	for _, group := range [][]search.Result{singles, pairs} {
		for i, r := range group {
			if h.limit > 0 && i >= h.limit {
				h.out.Print(h.styles.dim.Render(fmt.Sprintf("    ... %d more", len(group)-h.limit)))
				rank += len(group) - i
				break
			}
			word := h.styles.word.Render(fmt.Sprintf("%-30s", r.Candidate()))
			h.out.Printf("%4d. %s %-15s %2d", rank, word, r.Kind, r.Length)
			rank++
		}
	}
}

func (h *InputHandler) printSources() {
	stats := h.lib.Stats()
	for _, src := range h.lib.Sources() {
		state := "off"
		if src.Enabled {
			state = "on"
		}
		h.out.Printf("  %-24s %-3s %10s lines", src.Name, state, formatWithCommas(len(src.Lines)))
	}
	h.out.Printf("%d/%d sources enabled, %s words", stats.EnabledSources, stats.Sources, formatWithCommas(stats.Words))
}

func (h *InputHandler) printSettings() {
	s := h.spec
	h.out.Printf("len %d-%d prefix=%q suffix=%q contains=%q include=%q exclude=%q pairs=%v beam=%d cap=%d",
		s.MinLen, s.MaxLen, s.Prefix, s.Suffix, s.Contains, s.MustInclude, s.MustExclude,
		h.opts.Pairs, h.opts.BeamWidth, h.opts.ResultCap)
}

// formatWithCommas formats an integer with comma separators
func formatWithCommas(n int) string {
	str := strconv.Itoa(n)
	if n < 1000 {
		return str
	}
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
