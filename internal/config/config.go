// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// SnakeConfig contains all configuration for the Snake game. Times are in seconds.
type SnakeConfig struct {
	Board  SnakeBoard  `yaml:"board"`
	Speed  SnakeSpeed  `yaml:"speed"`
	Timing SnakeTiming `yaml:"timing"`
	Start  SnakeStart  `yaml:"start"`
	Food   SnakeFood   `yaml:"food"`
}

// SnakeBoard defines the board size in cells, border included.
// Zero means "fit the terminal".
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSpeed defines the forced-move interval and how food changes it.
type SnakeSpeed struct {
	Base       float64 `yaml:"base"`        // Seconds between forced moves
	BoostStep  float64 `yaml:"boost_step"`  // Subtracted by speed-boost food, no floor
	HinderStep float64 `yaml:"hinder_step"` // Added by speed-hinder food, capped at base
}

// SnakeTiming defines lifecycle delays.
type SnakeTiming struct {
	RestartDelay float64 `yaml:"restart_delay"`
}

// SnakeStart defines where the snake's tail starts; the body extends right.
type SnakeStart struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeFood defines the starting food and the spawn sampling mode.
type SnakeFood struct {
	StartX       int  `yaml:"start_x"`
	StartY       int  `yaml:"start_y"`
	LegacyYRange bool `yaml:"legacy_y_range"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for names it does not know.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParsePreset converts a user-supplied name into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
	}
}

// IsFixedPreset returns true if the preset disables speed changes from food.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
