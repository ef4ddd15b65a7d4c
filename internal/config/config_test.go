package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/bmlite/internal/config"
	"github.com/nikbrunner/bmlite/internal/storage"
)

// clearEnv unsets the override variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"BMLITE_BACKEND", "BMLITE_DATA", "BMLITE_DSN", "BMLITE_KEY", "BMLITE_DEBUG"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmlite", "config.yaml")

	cfg, err := config.LoadFrom(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, cfg, config.DefaultConfig())

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "backend: file"))
	assert.Assert(t, is.Contains(string(data), "feedback_duration: 1.5s"))
}

func TestLoadFrom_ReadsYAMLAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "backend: sqlite\nfeedback_duration: 3s\nnative_validation: false\nwatch: false\n"
	assert.NilError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := config.LoadFrom(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Backend, storage.BackendSQLite)
	assert.Equal(t, cfg.FeedbackDuration, 3*time.Second)
	assert.Assert(t, !cfg.NativeValidation)
	assert.Assert(t, !cfg.Watch)
	assert.Equal(t, cfg.StorageKey, storage.DefaultKey, "missing key falls back to default")
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("backend: [unclosed"), 0644))

	_, err := config.LoadFrom(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := config.DefaultConfig()
	want.Backend = storage.BackendPostgres
	want.DSN = "postgres://localhost/bm?sslmode=disable"
	want.FeedbackDuration = 2500 * time.Millisecond

	assert.NilError(t, config.Save(path, want))
	got, err := config.LoadFrom(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, want)
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BMLITE_BACKEND", "SQLite")
	t.Setenv("BMLITE_DATA", "/tmp/bm.db")
	t.Setenv("BMLITE_KEY", "work")
	t.Setenv("BMLITE_DEBUG", "yes")

	cfg := config.DefaultConfig()
	config.ApplyEnv(&cfg)

	assert.Equal(t, cfg.Backend, storage.BackendSQLite)
	assert.Equal(t, cfg.DataPath, "/tmp/bm.db")
	assert.Equal(t, cfg.StorageKey, "work")
	assert.Assert(t, cfg.Debug)
	assert.Equal(t, cfg.DSN, "")
}

func TestLoad_UsesXDGAndDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	confDir := filepath.Join(dir, "bmlite")
	assert.NilError(t, os.MkdirAll(confDir, 0755))
	assert.NilError(t, os.WriteFile(filepath.Join(confDir, ".env"), []byte("BMLITE_DSN=postgres://env/bm\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("BMLITE_DSN") })

	cfg, err := config.Load()
	assert.NilError(t, err)
	assert.Equal(t, cfg.DSN, "postgres://env/bm")
	assert.Equal(t, config.ConfigPath(), filepath.Join(confDir, "config.yaml"))

	_, err = os.Stat(config.ConfigPath())
	assert.NilError(t, err, "config file should be created")
}

func TestResolvePaths(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := config.DefaultConfig()
	path, err := cfg.ResolveDataPath()
	assert.NilError(t, err)
	assert.Equal(t, path, filepath.Join(dataHome, "bmlite", "bookmarks.json"))

	cfg.Backend = storage.BackendSQLite
	path, _ = cfg.ResolveDataPath()
	assert.Equal(t, path, filepath.Join(dataHome, "bmlite", "bookmarks.db"))

	cfg.DataPath = "/explicit.json"
	path, _ = cfg.ResolveDataPath()
	assert.Equal(t, path, "/explicit.json")

	assert.Equal(t, cfg.ResolveLogFile(), "", "logging off by default")
	cfg.Debug = true
	assert.Equal(t, cfg.ResolveLogFile(), filepath.Join(dataHome, "bmlite", "bmlite.log"))
	cfg.LogFile = "/var/log/bm.log"
	assert.Equal(t, cfg.ResolveLogFile(), "/var/log/bm.log")
}
