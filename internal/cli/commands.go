package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bastiangx/wordhunt/pkg/export"
)

var errUsage = errors.New("usage")

const helpText = `commands:
  :pairs                 toggle two-word results
  :min N / :max N        word length bounds
  :prefix X / :suffix X  starts / ends with X (no argument clears)
  :contains X            contains X as a substring
  :include X / :exclude X  letters that must / must not appear
  :beam N / :cap N       pair beam width / pair result cap
  :limit N               rows printed per group (0 = all)
  :clear                 reset filters to the starting ones
  :show                  print the current settings
  :sources               list word sources
  :toggle NAME           enable or disable a source
  :export FORMAT PATH    write the last results (csv, json, msgpack)`

// handleCommand applies one ":name args" line.
func (h *InputHandler) handleCommand(line string) error {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return fmt.Errorf("%w: :help", errUsage)
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	arg := strings.Join(args, " ")

	switch name {
	case "help", "h":
		h.out.Print(helpText)
		return nil
	case "pairs":
		h.opts.Pairs = !h.opts.Pairs
		h.out.Printf("pairs: %v", h.opts.Pairs)
		return nil
	case "min", "max", "beam", "cap", "limit":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: :%s N (N >= 0)", errUsage, name)
		}
		h.setNumber(name, n)
	case "prefix":
		h.spec.Prefix = arg
	case "suffix":
		h.spec.Suffix = arg
	case "contains":
		h.spec.Contains = arg
	case "include":
		h.spec.MustInclude = arg
	case "exclude":
		h.spec.MustExclude = arg
	case "clear":
		h.spec = h.start
	case "show":
	case "sources":
		h.printSources()
		return nil
	case "toggle":
		return h.toggle(arg)
	case "export":
		return h.export(args)
	default:
		return fmt.Errorf("unknown command :%s (try :help)", name)
	}

	h.spec = h.spec.Normalize()
	h.printSettings()
	return nil
}

func (h *InputHandler) setNumber(name string, n int) {
	switch name {
	case "min":
		h.spec.MinLen = n
	case "max":
		h.spec.MaxLen = n
	case "beam":
		if n < 1 {
			n = 1
		}
		h.opts.BeamWidth = n
	case "cap":
		if n < 1 {
			n = 1
		}
		h.opts.ResultCap = n
	case "limit":
		h.limit = n
	}
}

func (h *InputHandler) toggle(name string) error {
	if name == "" {
		return fmt.Errorf("%w: :toggle NAME", errUsage)
	}
	if _, err := h.lib.Toggle(name); err != nil {
		return err
	}
	src, _ := h.lib.Source(name)
	if h.store != nil {
		if err := h.store.SetEnabled(src.Name, src.Enabled); err != nil {
			h.out.Warnf("Could not remember state of %s: %v", src.Name, err)
		}
	}
	h.out.Printf("%s: enabled=%v", src.Name, src.Enabled)
	return nil
}

func (h *InputHandler) export(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: :export FORMAT PATH", errUsage)
	}
	format, err := export.ParseFormat(args[0])
	if err != nil {
		return err
	}
	if h.lastSingles == nil && h.lastPairs == nil {
		return errors.New("nothing to export yet")
	}

	rows := export.Rows(h.lastSingles, h.lastPairs)
	if err := export.WriteFile(args[1], format, rows); err != nil {
		return err
	}
	h.out.Printf("exported %d rows to %s", len(rows), args[1])
	return nil
}
