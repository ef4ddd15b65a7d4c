// Package config handles loading and saving bmlite configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/bmlite/config.yaml (plus an optional .env beside it)
//   - Data:    ~/.local/share/bmlite/ (bookmarks file or database, log file)
//
// Environment variables override the file: BMLITE_BACKEND, BMLITE_DATA,
// BMLITE_DSN, BMLITE_KEY and BMLITE_DEBUG.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/bmlite/internal/storage"
)

// DefaultFeedbackDuration is how long success feedback stays visible.
const DefaultFeedbackDuration = 1500 * time.Millisecond

// Config is the top-level configuration for bmlite.
type Config struct {
	Backend          storage.Backend `yaml:"backend"`               // file, sqlite, postgres or memory
	DataPath         string          `yaml:"data_path,omitempty"`   // file or database path; derived from backend when empty
	DSN              string          `yaml:"dsn,omitempty"`         // postgres connection string
	StorageKey       string          `yaml:"storage_key,omitempty"` // key the list is stored under
	FeedbackDuration time.Duration   `yaml:"feedback_duration"`     // e.g. "1.5s"
	NativeValidation bool            `yaml:"native_validation"`     // inputs report their own validity
	Watch            bool            `yaml:"watch"`                 // reload on external changes
	LogFile          string          `yaml:"log_file,omitempty"`    // enables logging when set
	Debug            bool            `yaml:"debug,omitempty"`       // debug level; logs to the data dir if log_file is empty
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:          storage.BackendFile,
		StorageKey:       storage.DefaultKey,
		FeedbackDuration: DefaultFeedbackDuration,
		NativeValidation: true,
		Watch:            true,
	}
}

// ConfigDir returns the XDG config directory for bmlite.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "bmlite")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bmlite")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads .env and config.yaml from the config directory and applies
// environment overrides. A missing config file is created with defaults.
func Load() (Config, error) {
	dir := ConfigDir()
	if dir == "" {
		cfg := DefaultConfig()
		ApplyEnv(&cfg)
		return cfg, nil
	}

	if err := LoadEnvFile(filepath.Join(dir, ".env")); err != nil {
		return DefaultConfig(), err
	}

	cfg, err := LoadFrom(filepath.Join(dir, "config.yaml"))
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadFrom reads config from a specific path.
// Creates the file with defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Non-fatal: return defaults even if the file can't be written
			_ = Save(path, cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if cfg.Backend == "" {
		cfg.Backend = defaults.Backend
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = defaults.StorageKey
	}
	if cfg.FeedbackDuration <= 0 {
		cfg.FeedbackDuration = defaults.FeedbackDuration
	}

	return cfg, nil
}

// Save writes config to path as YAML.
// Creates the directory if it doesn't exist.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnvFile loads KEY=value pairs from path into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from BMLITE_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("BMLITE_BACKEND")); v != "" {
		cfg.Backend = storage.Backend(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("BMLITE_DATA")); v != "" {
		cfg.DataPath = v
	}
	if v := strings.TrimSpace(os.Getenv("BMLITE_DSN")); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("BMLITE_KEY")); v != "" {
		cfg.StorageKey = v
	}
	if envBool("BMLITE_DEBUG") {
		cfg.Debug = true
	}
}

// ResolveDataPath returns DataPath, or the default file for the backend.
func (c Config) ResolveDataPath() (string, error) {
	if c.DataPath != "" {
		return c.DataPath, nil
	}
	dir, err := storage.DefaultDataDir()
	if err != nil {
		return "", err
	}
	return storage.DefaultDataPath(dir, c.Backend), nil
}

// ResolveLogFile returns where logs go, or "" when logging is off.
func (c Config) ResolveLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	if !c.Debug {
		return ""
	}
	dir, err := storage.DefaultDataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bmlite.log")
}

func envBool(name string) bool {
	v := strings.TrimSpace(os.Getenv(name))
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
