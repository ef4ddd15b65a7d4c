package storage

import (
	"errors"
	"sync"
)

// ErrCorrupt is returned by a KV whose backing medium cannot be decoded at all.
// The adapter treats it the same as an unparseable value.
var ErrCorrupt = errors.New("storage is corrupt")

// KV is a durable string key-value store.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value for key.
	Set(key, value string) error
	Close() error
}

// MemoryKV implements KV in process memory. Used for tests and the memory backend.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error {
	return nil
}
