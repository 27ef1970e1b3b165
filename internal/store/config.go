package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = "config.json"

// Backend names accepted in config and on the --store flag.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the small amount of app configuration that is not state:
// where the journal server lives and which KV backend to use.
type Config struct {
	APIBaseURL string `json:"apiBaseUrl,omitempty"`
	Store      string `json:"store,omitempty"`
}

func defaultConfig() Config {
	return Config{
		APIBaseURL: "http://localhost:8000",
		Store:      BackendJSON,
	}
}

// LoadConfig reads config.json from the data dir; a missing file yields
// defaults. Fields left empty in the file also fall back to defaults.
func LoadConfig(dir string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := json.Unmarshal(b, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if fileCfg.APIBaseURL != "" {
		cfg.APIBaseURL = fileCfg.APIBaseURL
	}
	if fileCfg.Store != "" {
		cfg.Store = fileCfg.Store
	}
	return cfg, nil
}

// DefaultDataDir resolves the per-user data dir (~/.pretrade).
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".pretrade"), nil
}

// Open returns the KV backend named by cfg.Store.
func Open(dir string, cfg Config) (KV, error) {
	switch cfg.Store {
	case "", BackendJSON:
		return OpenJSON(dir)
	case BackendSQLite:
		return OpenSQLite(dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}
