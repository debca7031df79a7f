// Package config loads the CLI configuration: a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries presentation-layer settings. The debounce values are the
// input-coalescing timing contract: edits wait SaveDebounce before the
// store update fires, and the saved indicator follows SavedDebounce later.
type Config struct {
	DataDir       string
	ExportDir     string
	SaveDebounce  time.Duration
	SavedDebounce time.Duration
	WatchDebounce time.Duration
}

// fileConfig is the YAML shape. Durations are strings ("450ms", "1s")
// because yaml.v3 has no native time.Duration decoding.
type fileConfig struct {
	DataDir       string `yaml:"data_dir"`
	ExportDir     string `yaml:"export_dir"`
	SaveDebounce  string `yaml:"save_debounce"`
	SavedDebounce string `yaml:"saved_debounce"`
	WatchDebounce string `yaml:"watch_debounce"`
}

// Defaults per the original application's observed behavior.
const (
	DefaultSaveDebounce  = 450 * time.Millisecond
	DefaultSavedDebounce = 350 * time.Millisecond
	DefaultWatchDebounce = 50 * time.Millisecond
)

// DefaultDataDir resolves the per-user data directory.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "ocean-notes")
}

// DefaultPath is the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty), fills in
// defaults, and applies environment overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Config{
		DataDir:       DefaultDataDir(),
		SaveDebounce:  DefaultSaveDebounce,
		SavedDebounce: DefaultSavedDebounce,
		WatchDebounce: DefaultWatchDebounce,
	}

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if fc.DataDir != "" {
			cfg.DataDir = fc.DataDir
		}
		if fc.ExportDir != "" {
			cfg.ExportDir = fc.ExportDir
		}
		if cfg.SaveDebounce, err = durationOr(fc.SaveDebounce, cfg.SaveDebounce); err != nil {
			return Config{}, fmt.Errorf("bad save_debounce in %s: %w", path, err)
		}
		if cfg.SavedDebounce, err = durationOr(fc.SavedDebounce, cfg.SavedDebounce); err != nil {
			return Config{}, fmt.Errorf("bad saved_debounce in %s: %w", path, err)
		}
		if cfg.WatchDebounce, err = durationOr(fc.WatchDebounce, cfg.WatchDebounce); err != nil {
			return Config{}, fmt.Errorf("bad watch_debounce in %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.DataDir = envOr("OCEAN_DATA_DIR", cfg.DataDir)
	cfg.ExportDir = envOr("OCEAN_EXPORT_DIR", cfg.ExportDir)
	cfg.SaveDebounce = envDurationOr("OCEAN_SAVE_DEBOUNCE", cfg.SaveDebounce)
	cfg.SavedDebounce = envDurationOr("OCEAN_SAVED_DEBOUNCE", cfg.SavedDebounce)
	cfg.WatchDebounce = envDurationOr("OCEAN_WATCH_DEBOUNCE", cfg.WatchDebounce)

	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	return cfg, nil
}

func durationOr(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
