package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  20,
			Height: 20,
		},
		Speed: SnakeSpeed{
			Base:       0.1,
			BoostStep:  0.04,
			HinderStep: 0.02,
		},
		Timing: SnakeTiming{
			RestartDelay: 1.0,
		},
		Start: SnakeStart{
			X: 2,
			Y: 2,
		},
		Food: SnakeFood{
			StartX: 6,
			StartY: 4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake", "snake_classic":
		return defaultSnakeYAML
	default:
		return nil
	}
}
