package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Backend names a KV implementation.
type Backend string

const (
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// OpenParams holds parameters for Open.
type OpenParams struct {
	Backend Backend
	Path    string // file or sqlite database path
	DSN     string // postgres connection string
	Key     string
	Logger  *log.Logger
}

// Open creates the configured KV and wraps it in an Adapter.
func Open(params OpenParams) (*Adapter, error) {
	var (
		kv  KV
		err error
	)

	switch params.Backend {
	case BackendFile, "":
		if params.Path == "" {
			return nil, fmt.Errorf("file backend: no data path configured")
		}
		kv = NewFileKV(params.Path)
	case BackendSQLite:
		if params.Path == "" {
			return nil, fmt.Errorf("sqlite backend: no data path configured")
		}
		kv, err = NewSQLiteKV(params.Path)
	case BackendPostgres:
		if params.DSN == "" {
			return nil, fmt.Errorf("postgres backend: no DSN configured")
		}
		kv, err = NewPostgresKV(params.DSN)
	case BackendMemory:
		kv = NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", params.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", params.Backend, err)
	}

	if params.Logger != nil {
		params.Logger.Debug("storage opened", "backend", params.Backend, "path", params.Path)
	}

	return NewAdapter(AdapterParams{
		KV:     kv,
		Key:    params.Key,
		Logger: params.Logger,
	}), nil
}

// DefaultDataPath returns the default data file for a backend inside dir.
func DefaultDataPath(dir string, backend Backend) string {
	if backend == BackendSQLite {
		return filepath.Join(dir, "bookmarks.db")
	}
	return filepath.Join(dir, "bookmarks.json")
}

// DefaultDataDir returns ~/.local/share/bmlite, honouring XDG_DATA_HOME.
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "bmlite"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "bmlite"), nil
}
