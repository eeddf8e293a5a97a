package config

import "testing"

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.IntervalSec = 3
	cfg.DefaultPage = "trends"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Load(); got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if got := Load(); got != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", got, Default())
	}
}
