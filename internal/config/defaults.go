package config

import (
	_ "embed"
)

//go:embed defaults/toweroops.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as a last
// resort if the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		AI: AIConfig{
			DefaultDifficulty: string(DifficultyNormal),
			ThinkDelayMs:      400,
		},
		Storage: StorageConfig{
			DatabasePath: "~/.toweroops/matches.db",
		},
	}
}
