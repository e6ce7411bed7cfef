package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/laserlicht/toweroops/internal/ai"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
ai:
  default_difficulty: expert
  think_delay_ms: 50
storage:
  database_path: /tmp/test.db
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AI.DefaultDifficulty != "expert" {
		t.Errorf("DefaultDifficulty = %q, want expert", cfg.AI.DefaultDifficulty)
	}
	if cfg.AI.ThinkDelayMs != 50 {
		t.Errorf("ThinkDelayMs = %d, want 50", cfg.AI.ThinkDelayMs)
	}
	if cfg.Storage.DatabasePath != "/tmp/test.db" {
		t.Errorf("DatabasePath = %q, want /tmp/test.db", cfg.Storage.DatabasePath)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")

	if err := os.WriteFile(path, []byte("ai: [not a mapping"), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	// With no custom path and no user/local config present in the test
	// environment, Load falls back to the embedded YAML.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !IsValidPreset(DifficultyPreset(cfg.AI.DefaultDifficulty)) {
		t.Errorf("Embedded default difficulty %q is not a valid preset", cfg.AI.DefaultDifficulty)
	}
	if cfg.AI.ThinkDelayMs < 0 {
		t.Errorf("Embedded think delay should not be negative, got %d", cfg.AI.ThinkDelayMs)
	}
	if cfg.Storage.DatabasePath == "" {
		t.Error("Embedded default should set a database path")
	}
}

func TestLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   ai.Level
	}{
		{DifficultyBeginner, ai.LevelRandom},
		{DifficultyEasy, ai.LevelGreedy},
		{DifficultyNormal, ai.LevelNormal},
		{DifficultyHard, ai.LevelHard},
		{DifficultyExpert, ai.LevelExpert},
		{"nonsense", ai.LevelNormal},
	}

	for _, tc := range tests {
		if got := LevelForPreset(tc.preset); got != tc.want {
			t.Errorf("LevelForPreset(%q) = %v, want %v", tc.preset, got, tc.want)
		}
	}
}

func TestPresetNamesOrdered(t *testing.T) {
	names := PresetNames()
	if len(names) != 5 {
		t.Fatalf("Expected 5 presets, got %d", len(names))
	}

	prev := ai.Level(-1)
	for _, name := range names {
		if !IsValidPreset(name) {
			t.Errorf("PresetNames() returned invalid preset %q", name)
		}
		level := LevelForPreset(name)
		if level <= prev {
			t.Errorf("Presets must be ordered weakest to strongest, %q breaks the order", name)
		}
		prev = level
	}
}
