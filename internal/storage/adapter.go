package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"

	"github.com/nikbrunner/bmlite/internal/model"
)

// DefaultKey is the key the bookmark list is stored under.
const DefaultKey = "bookmarks"

// Storage defines the interface for persisting the bookmark collection.
type Storage interface {
	Load() (model.Collection, error)
	Save(c model.Collection) error
}

// AdapterParams holds parameters for creating an Adapter.
type AdapterParams struct {
	KV     KV
	Key    string                  // defaults to DefaultKey
	Seed   func() model.Collection // defaults to model.Seed
	Logger *log.Logger             // defaults to a discarding logger
}

// Adapter implements Storage by serializing the whole collection as one JSON
// string under a single key.
type Adapter struct {
	kv     KV
	key    string
	seed   func() model.Collection
	logger *log.Logger
}

// NewAdapter creates an Adapter over the given KV.
func NewAdapter(params AdapterParams) *Adapter {
	a := &Adapter{
		kv:     params.KV,
		key:    params.Key,
		seed:   params.Seed,
		logger: params.Logger,
	}
	if a.key == "" {
		a.key = DefaultKey
	}
	if a.seed == nil {
		a.seed = model.Seed
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	return a
}

// Key returns the storage key.
func (a *Adapter) Key() string {
	return a.key
}

// KV returns the underlying key-value store.
func (a *Adapter) KV() KV {
	return a.kv
}

// Load reads the collection.
// On first run the seed is written and returned. A stored value that fails to
// parse is treated as corruption: the seed replaces it.
func (a *Adapter) Load() (model.Collection, error) {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			a.logger.Warn("storage unreadable, resetting to seed", "err", err)
			return a.reset()
		}
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	if !ok {
		a.logger.Info("no bookmarks stored, writing seed", "key", a.key)
		return a.reset()
	}

	var c model.Collection
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		a.logger.Warn("stored bookmarks are not valid JSON, resetting to seed", "key", a.key, "err", err)
		return a.reset()
	}
	if c == nil {
		c = model.Collection{}
	}

	// Older records may predate IDs; give them one and persist so IDs stay stable.
	if c.EnsureIDs() {
		if err := a.Save(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Save overwrites the stored collection unconditionally.
func (a *Adapter) Save(c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := a.kv.Set(a.key, string(data)); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	a.logger.Debug("saved bookmarks", "count", len(c))
	return nil
}

// Close closes the underlying KV.
func (a *Adapter) Close() error {
	return a.kv.Close()
}

// WatchPaths returns the files whose modification signals an external change,
// or nil when the backend is not file based.
func (a *Adapter) WatchPaths() []string {
	switch kv := a.kv.(type) {
	case *FileKV:
		return []string{kv.Path()}
	case *SQLiteKV:
		return []string{kv.Path(), kv.Path() + "-wal"}
	default:
		return nil
	}
}

func (a *Adapter) reset() (model.Collection, error) {
	seed := a.seed()
	if err := a.Save(seed); err != nil {
		return nil, err
	}
	return seed, nil
}
