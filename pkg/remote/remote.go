/*
Package remote loads word sources from external services at startup.

Backends register a Factory under a kind name from their init function,
the same way database/sql drivers do. Import a backend with a blank
identifier to make its kind available:

	import _ "github.com/bastiangx/wordhunt/pkg/remote/redis"
*/
package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/charmbracelet/log"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrUnknownKind is returned for a kind no backend registered.
	// Usually the backend package was not imported.
	ErrUnknownKind = errors.New("unknown remote source kind")
	// ErrMissingSetting is returned when a required config key is empty.
	ErrMissingSetting = errors.New("missing remote source setting")
)

// Fetcher pulls raw word lines from one remote source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]string, error)
	Close() error
}

// Factory builds a Fetcher from its config entry.
type Factory func(cfg config.RemoteConfig) (Fetcher, error)

var factories = make(map[string]Factory)

// Register makes a backend available under kind (case-insensitive).
// Only call it from init.
func Register(kind string, factory Factory) {
	factories[strings.ToLower(kind)] = factory
}

// Kinds returns the registered kind names.
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	return kinds
}

// New builds the Fetcher registered for cfg.Kind.
func New(cfg config.RemoteConfig) (Fetcher, error) {
	factory, ok := factories[strings.ToLower(cfg.Kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
	return factory(cfg)
}

// Load fetches one remote source, bounded by its configured timeout.
// At most MaxWords lines are kept when MaxWords is positive.
func Load(ctx context.Context, cfg config.RemoteConfig) (dictionary.Source, error) {
	if cfg.Name == "" {
		return dictionary.Source{}, dictionary.ErrEmptySourceName
	}

	fetcher, err := New(cfg)
	if err != nil {
		return dictionary.Source{}, err
	}
	defer fetcher.Close()

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lines, err := fetcher.Fetch(ctx)
	if err != nil {
		return dictionary.Source{}, fmt.Errorf("failed to fetch remote source %s: %w", cfg.Name, err)
	}
	if cfg.MaxWords > 0 && len(lines) > cfg.MaxWords {
		lines = lines[:cfg.MaxWords]
	}

	log.Debugf("Fetched remote source %s (%s): %d lines", cfg.Name, cfg.Kind, len(lines))
	return dictionary.NewSource(cfg.Name, lines), nil
}

// LoadAll fetches every entry in order. Failing sources are skipped with a warning.
func LoadAll(ctx context.Context, cfgs []config.RemoteConfig) []dictionary.Source {
	sources := make([]dictionary.Source, 0, len(cfgs))
	for _, cfg := range cfgs {
		src, err := Load(ctx, cfg)
		if err != nil {
			log.Warnf("Skipping remote source %s: %v", cfg.Name, err)
			continue
		}
		sources = append(sources, src)
	}
	return sources
}
