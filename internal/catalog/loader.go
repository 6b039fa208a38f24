package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mkyte/paddock/internal/event"
)

// Loader reads the raw entity dataset from disk and caches the parsed sets.
// The catalog is best-effort: a missing file yields an empty catalog, not an
// error, so the editor stays usable before the first dataset sync.
type Loader struct {
	path string

	mu     sync.RWMutex
	cached []event.RawSet
	loaded bool
}

// NewLoader creates a loader for the dataset file at path. The extension
// selects the format: .yaml/.yml parse as YAML, anything else as JSON.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the parsed entity list, reading the file on first use.
func (l *Loader) Load() ([]event.RawSet, error) {
	l.mu.RLock()
	if l.loaded {
		sets := l.cached
		l.mu.RUnlock()
		return sets, nil
	}
	l.mu.RUnlock()

	sets, err := readSets(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.cached = sets
	l.loaded = true
	l.mu.Unlock()
	return sets, nil
}

// Index is a convenience wrapper building the catalog index from Load.
func (l *Loader) Index() (*Index, error) {
	sets, err := l.Load()
	if err != nil {
		return nil, err
	}
	return NewIndex(sets), nil
}

// Invalidate clears the cache so the next Load re-reads the file. Call after
// a dataset refresh lands on disk.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cached = nil
	l.loaded = false
}

func readSets(path string) ([]event.RawSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read catalog")
	}
	var sets []event.RawSet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &sets); err != nil {
			return nil, errors.Wrap(err, "parse catalog yaml")
		}
	default:
		if err := json.Unmarshal(b, &sets); err != nil {
			return nil, errors.Wrap(err, "parse catalog json")
		}
	}
	return sets, nil
}
