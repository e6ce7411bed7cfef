// Package config provides YAML-based configuration loading and difficulty
// presets for Tower Oops!.
package config

import (
	"github.com/laserlicht/toweroops/internal/ai"
)

// Config contains all runtime configuration.
type Config struct {
	AI      AIConfig      `yaml:"ai"`
	Storage StorageConfig `yaml:"storage"`
}

// AIConfig defines the computer opponent parameters.
type AIConfig struct {
	DefaultDifficulty string `yaml:"default_difficulty"` // beginner, easy, normal, hard, expert
	ThinkDelayMs      int    `yaml:"think_delay_ms"`     // Artificial pause before the reply is shown
}

// StorageConfig defines where match history is kept.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyBeginner DifficultyPreset = "beginner"
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyNormal   DifficultyPreset = "normal"
	DifficultyHard     DifficultyPreset = "hard"
	DifficultyExpert   DifficultyPreset = "expert"
)

// PresetNames lists all presets from weakest to strongest.
func PresetNames() []DifficultyPreset {
	return []DifficultyPreset{
		DifficultyBeginner,
		DifficultyEasy,
		DifficultyNormal,
		DifficultyHard,
		DifficultyExpert,
	}
}

// LevelForPreset maps a difficulty preset to an engine level.
// Unknown presets fall back to normal.
func LevelForPreset(preset DifficultyPreset) ai.Level {
	switch preset {
	case DifficultyBeginner:
		return ai.LevelRandom
	case DifficultyEasy:
		return ai.LevelGreedy
	case DifficultyNormal:
		return ai.LevelNormal
	case DifficultyHard:
		return ai.LevelHard
	case DifficultyExpert:
		return ai.LevelExpert
	default:
		return ai.LevelNormal
	}
}

// IsValidPreset returns true if the preset names a known difficulty.
func IsValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyBeginner, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}
