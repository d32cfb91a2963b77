package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// It matches defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 15,
			Cols: 10,
		},
		Timing: TimingConfig{
			BaseSpeedMS: 600,
			TopSpeedMS:  200,
		},
		Difficulty: DifficultyConfig{
			Level:   5,
			Scaling: true,
		},
		Keys: KeyConfig{
			Rotate: []string{"w", "up"},
			Left:   []string{"a", "left"},
			Right:  []string{"d", "right"},
			Drop:   []string{"s", "down"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
