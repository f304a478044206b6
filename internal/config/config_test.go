package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if embedded != DefaultGameConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", embedded, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Enemies.InitialSpeed = 75

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Enemies.InitialSpeed != 75 {
		t.Errorf("loaded initial speed = %v, want 75", loaded.Enemies.InitialSpeed)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantSpeed     float64
		wantIncrement float64
	}{
		{DifficultyEasy, 40, 7.5},
		{DifficultyNormal, 50, 10},
		{DifficultyHard, 65, 15},
		{DifficultyFixed, 50, 0},
		{"", 50, 10}, // empty preset leaves defaults
	}

	for _, tc := range tests {
		cfg := DefaultGameConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Enemies.InitialSpeed != tc.wantSpeed {
			t.Errorf("%q: initial speed = %v, want %v", tc.preset, cfg.Enemies.InitialSpeed, tc.wantSpeed)
		}
		if cfg.Enemies.SpeedIncrement != tc.wantIncrement {
			t.Errorf("%q: speed increment = %v, want %v", tc.preset, cfg.Enemies.SpeedIncrement, tc.wantIncrement)
		}
	}
}
