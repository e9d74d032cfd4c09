package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bastiangx/wordhunt/pkg/dictionary"
)

type storedSource struct {
	Seq     uint64   `json:"seq"`
	Lines   []string `json:"lines"`
	Enabled bool     `json:"enabled"`
}

// SaveSource stores src, replacing any previous version under the same
// name but keeping its original position.
func (db *DB) SaveSource(src dictionary.Source) error {
	if src.Name == "" {
		return dictionary.ErrEmptySourceName
	}
	return db.Update(func(tx *Tx) error {
		b := tx.SourceBucket()
		rec := storedSource{Lines: src.Lines, Enabled: src.Enabled}

		if prev := b.Get([]byte(src.Name)); prev != nil {
			var old storedSource
			if err := json.Unmarshal(prev, &old); err != nil {
				return fmt.Errorf("corrupt source record %s: %w", src.Name, err)
			}
			rec.Seq = old.Seq
		} else {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			rec.Seq = seq
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put([]byte(src.Name), data)
	})
}

// LoadSources returns every stored source in the order it was first saved.
func (db *DB) LoadSources() ([]dictionary.Source, error) {
	type entry struct {
		name string
		rec  storedSource
	}
	var entries []entry

	err := db.View(func(tx *Tx) error {
		return tx.SourceBucket().ForEach(func(k, v []byte) error {
			var rec storedSource
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt source record %s: %w", k, err)
			}
			entries = append(entries, entry{name: string(k), rec: rec})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].rec.Seq < entries[j].rec.Seq })
	sources := make([]dictionary.Source, len(entries))
	for i, e := range entries {
		sources[i] = dictionary.Source{Name: e.name, Lines: e.rec.Lines, Enabled: e.rec.Enabled}
	}
	return sources, nil
}

// DeleteSource forgets a stored source and its remembered state.
// Deleting an unknown name is not an error.
func (db *DB) DeleteSource(name string) error {
	return db.Update(func(tx *Tx) error {
		if err := tx.SourceBucket().Delete([]byte(name)); err != nil {
			return err
		}
		return tx.StateBucket().Delete([]byte(name))
	})
}

// SetEnabled remembers the enabled flag of name. Stored sources are
// updated in place; any other name goes to the state bucket.
func (db *DB) SetEnabled(name string, enabled bool) error {
	return db.Update(func(tx *Tx) error {
		b := tx.SourceBucket()
		if v := b.Get([]byte(name)); v != nil {
			var rec storedSource
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt source record %s: %w", name, err)
			}
			rec.Enabled = enabled
			data, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			return b.Put([]byte(name), data)
		}

		flag := []byte("0")
		if enabled {
			flag = []byte("1")
		}
		return tx.StateBucket().Put([]byte(name), flag)
	})
}

// EnabledStates returns the remembered flags of sources not stored here.
func (db *DB) EnabledStates() (map[string]bool, error) {
	states := map[string]bool{}
	err := db.View(func(tx *Tx) error {
		return tx.StateBucket().ForEach(func(k, v []byte) error {
			states[string(k)] = string(v) == "1"
			return nil
		})
	})
	return states, err
}

// Apply overlays the stored state onto sources: remembered flags are
// applied, then stored sources not already present are appended.
func (db *DB) Apply(sources []dictionary.Source) ([]dictionary.Source, error) {
	states, err := db.EnabledStates()
	if err != nil {
		return nil, err
	}
	stored, err := db.LoadSources()
	if err != nil {
		return nil, err
	}

	out := make([]dictionary.Source, 0, len(sources)+len(stored))
	present := make(map[string]bool, len(sources))
	for _, src := range sources {
		if on, ok := states[src.Name]; ok {
			src.Enabled = on
		}
		present[src.Name] = true
		out = append(out, src)
	}
	for _, src := range stored {
		if present[src.Name] {
			continue
		}
		out = append(out, src)
	}
	return out, nil
}
