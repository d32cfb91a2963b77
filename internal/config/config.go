// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Keys       KeyConfig        `yaml:"keys"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the tick interval bounds in milliseconds.
type TimingConfig struct {
	BaseSpeedMS int `yaml:"base_speed_ms"`
	TopSpeedMS  int `yaml:"top_speed_ms"`
}

// BaseSpeed returns the base tick interval.
func (t TimingConfig) BaseSpeed() time.Duration {
	return time.Duration(t.BaseSpeedMS) * time.Millisecond
}

// TopSpeed returns the shortest tick interval.
func (t TimingConfig) TopSpeed() time.Duration {
	return time.Duration(t.TopSpeedMS) * time.Millisecond
}

// DifficultyConfig defines how the tick interval shrinks with score.
type DifficultyConfig struct {
	Level   int  `yaml:"level"`   // 1-10, 0 disables acceleration
	Scaling bool `yaml:"scaling"` // false keeps the base speed for the whole game
}

// KeyConfig lists the key names bound to each piece movement.
// Names follow Bubble Tea's key strings ("w", "up", "ctrl+c").
type KeyConfig struct {
	Rotate []string `yaml:"rotate"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Drop   []string `yaml:"drop"`
}

// Limits enforced by Validate.
const (
	MinRows       = 4
	MinCols       = 3
	MaxDifficulty = 10
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Rows < MinRows:
		return fmt.Errorf("config: board rows must be >= %d, got %d: %w", MinRows, c.Board.Rows, ErrInvalid)
	case c.Board.Cols < MinCols:
		return fmt.Errorf("config: board cols must be >= %d, got %d: %w", MinCols, c.Board.Cols, ErrInvalid)
	case c.Timing.BaseSpeedMS <= 0 || c.Timing.TopSpeedMS <= 0:
		return fmt.Errorf("config: speeds must be positive: %w", ErrInvalid)
	case c.Timing.TopSpeedMS > c.Timing.BaseSpeedMS:
		return fmt.Errorf("config: top_speed_ms (%d) exceeds base_speed_ms (%d): %w",
			c.Timing.TopSpeedMS, c.Timing.BaseSpeedMS, ErrInvalid)
	case c.Difficulty.Level < 0 || c.Difficulty.Level > MaxDifficulty:
		return fmt.Errorf("config: difficulty level must be 0-%d, got %d: %w", MaxDifficulty, c.Difficulty.Level, ErrInvalid)
	}

	bindings := map[string][]string{
		"rotate": c.Keys.Rotate,
		"left":   c.Keys.Left,
		"right":  c.Keys.Right,
		"drop":   c.Keys.Drop,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("config: no keys bound to %s: %w", name, ErrInvalid)
		}
	}
	return nil
}
