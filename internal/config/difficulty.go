package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// LevelForPreset returns the difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return MaxDifficulty
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables acceleration.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParseDifficulty turns a --difficulty value into a DifficultyConfig change.
// It accepts a preset name or a level number 1-10. An empty string leaves
// cfg untouched.
func ParseDifficulty(value string, cfg *DifficultyConfig) error {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return nil
	}

	switch preset := DifficultyPreset(value); preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Level = LevelForPreset(preset)
		cfg.Scaling = true
		return nil
	case DifficultyFixed:
		cfg.Scaling = false
		return nil
	}

	level, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("config: unknown difficulty %q (use 1-%d, easy, normal, hard or fixed)", value, MaxDifficulty)
	}
	if level < 1 || level > MaxDifficulty {
		return fmt.Errorf("config: difficulty %d out of range 1-%d", level, MaxDifficulty)
	}
	cfg.Level = level
	cfg.Scaling = true
	return nil
}

// SpeedFactor returns how many milliseconds each point of score removes from
// the tick interval: the level modulo 11, squared.
func SpeedFactor(level int) int {
	m := level % 11
	return m * m
}
