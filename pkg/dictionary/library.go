package dictionary

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Library owns the ordered word sources and the Index built from them.
//
// Every mutation builds the new Index off to the side and swaps it in under
// the write lock, so readers always see an Index that matches one complete
// set of sources. Mutations are serialized among themselves.
type Library struct {
	sources []Source
	index   *Index
	mu      sync.RWMutex
	update  sync.Mutex
}

// LibraryStats describes the sources and the current index.
type LibraryStats struct {
	Sources        int
	EnabledSources int
	TotalLines     int
	Words          int
	Signatures     int
}

// NewLibrary creates a library from sources, in order.
// Source names must be non-empty and unique.
func NewLibrary(sources ...Source) (*Library, error) {
	names := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		if src.Name == "" {
			return nil, ErrEmptySourceName
		}
		if _, dup := names[src.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrSourceExists, src.Name)
		}
		names[src.Name] = struct{}{}
	}

	owned := make([]Source, len(sources))
	copy(owned, sources)
	return &Library{
		sources: owned,
		index:   Rebuild(owned),
	}, nil
}

// Index returns the current index. It stays valid, and unchanged,
// after later mutations.
func (l *Library) Index() *Index {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index
}

// Sources returns a copy of the sources, in order.
func (l *Library) Sources() []Source {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Source, len(l.sources))
	copy(out, l.sources)
	return out
}

// Source returns the source called name.
func (l *Library) Source(name string) (Source, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.find(name); i >= 0 {
		return l.sources[i], true
	}
	return Source{}, false
}

// Add appends src after the existing sources and rebuilds.
func (l *Library) Add(src Source) (*Index, error) {
	if src.Name == "" {
		return nil, ErrEmptySourceName
	}
	return l.mutate(func(sources []Source) ([]Source, error) {
		if indexOf(sources, src.Name) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrSourceExists, src.Name)
		}
		return append(sources, src), nil
	})
}

// Put replaces the source with the same name in place, keeping its position,
// or appends src when no such source exists.
func (l *Library) Put(src Source) (*Index, error) {
	if src.Name == "" {
		return nil, ErrEmptySourceName
	}
	return l.mutate(func(sources []Source) ([]Source, error) {
		if i := indexOf(sources, src.Name); i >= 0 {
			sources[i] = src
			return sources, nil
		}
		return append(sources, src), nil
	})
}

// Remove drops the source called name and rebuilds.
func (l *Library) Remove(name string) (*Index, error) {
	return l.mutate(func(sources []Source) ([]Source, error) {
		i := indexOf(sources, name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
		}
		return append(sources[:i], sources[i+1:]...), nil
	})
}

// Toggle flips the enabled flag of the source called name and rebuilds.
func (l *Library) Toggle(name string) (*Index, error) {
	return l.mutate(func(sources []Source) ([]Source, error) {
		i := indexOf(sources, name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
		}
		sources[i].Enabled = !sources[i].Enabled
		return sources, nil
	})
}

// SetEnabled sets the enabled flag of the source called name and rebuilds.
func (l *Library) SetEnabled(name string, enabled bool) (*Index, error) {
	return l.mutate(func(sources []Source) ([]Source, error) {
		i := indexOf(sources, name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
		}
		sources[i].Enabled = enabled
		return sources, nil
	})
}

// Stats returns source and index counts.
func (l *Library) Stats() LibraryStats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := LibraryStats{
		Sources:    len(l.sources),
		Words:      l.index.Len(),
		Signatures: len(l.index.bySig),
	}
	for _, src := range l.sources {
		stats.TotalLines += len(src.Lines)
		if src.Enabled {
			stats.EnabledSources++
		}
	}
	return stats
}

// mutate applies change to a private copy of the sources, rebuilds the index
// from the result and only then publishes both together.
func (l *Library) mutate(change func([]Source) ([]Source, error)) (*Index, error) {
	l.update.Lock()
	defer l.update.Unlock()

	l.mu.RLock()
	working := make([]Source, len(l.sources))
	copy(working, l.sources)
	l.mu.RUnlock()

	next, err := change(working)
	if err != nil {
		return nil, err
	}
	idx := Rebuild(next)

	l.mu.Lock()
	l.sources = next
	l.index = idx
	l.mu.Unlock()

	log.Debugf("Library updated: %d sources, %d words", len(next), idx.Len())
	return idx, nil
}

// find must be called with l.mu held.
func (l *Library) find(name string) int {
	return indexOf(l.sources, name)
}

func indexOf(sources []Source, name string) int {
	for i, src := range sources {
		if src.Name == name {
			return i
		}
	}
	return -1
}
