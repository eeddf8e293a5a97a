package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults persisted between runs.
type Config struct {
	IntervalSec int    `json:"interval_sec"`
	ChartWindow int    `json:"chart_window"`
	LogCapacity int    `json:"log_capacity"`
	DefaultPage string `json:"default_page"`
	ServeAddr   string `json:"serve_addr"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		IntervalSec: 1,
		ChartWindow: 30,
		LogCapacity: 100,
		DefaultPage: "overview",
		ServeAddr:   "127.0.0.1:8086",
	}
}

// Path returns ~/.config/tepdash/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tepdash", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("tepdash: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
