package snake

import (
	"errors"
	"fmt"
)

// Validation errors returned by Config.Validate.
var (
	ErrBoardTooSmall = errors.New("board too small")
	ErrInvalidSpeed  = errors.New("invalid speed settings")
	ErrStartOutside  = errors.New("snake start outside the interior")
	ErrFoodOutside   = errors.New("starting food outside the interior")
)

const (
	minBoardWidth  = 3 + initialLength // border + body + room to move
	minBoardHeight = 3
)

// Config holds the tunables of one game. Times are in seconds.
type Config struct {
	Width  int
	Height int

	BaseSpeed    float64 // Seconds between forced moves at the start
	BoostStep    float64 // Subtracted from the speed threshold by speed-boost food
	HinderStep   float64 // Added to the speed threshold by speed-hinder food, capped at BaseSpeed
	RestartDelay float64 // Seconds spent on the game-over screen

	StartX, StartY int // Tail cell of the initial snake
	FoodX, FoodY   int // Position of the starting plain food

	// LegacyFoodRange draws the food's y coordinate from the x range, the
	// way the first version of the game did. Samples outside the interior
	// are rejected.
	LegacyFoodRange bool

	Seed int64
}

// DefaultConfig returns the standard 20x20 game.
func DefaultConfig() Config {
	return Config{
		Width:        20,
		Height:       20,
		BaseSpeed:    0.1,
		BoostStep:    0.04,
		HinderStep:   0.02,
		RestartDelay: 1.0,
		StartX:       2,
		StartY:       2,
		FoodX:        6,
		FoodY:        4,
	}
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	if c.Width < minBoardWidth || c.Height < minBoardHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, c.Width, c.Height, minBoardWidth, minBoardHeight)
	}
	if c.BaseSpeed <= 0 || c.BoostStep < 0 || c.HinderStep < 0 || c.RestartDelay < 0 {
		return fmt.Errorf("%w: base=%v boost=%v hinder=%v restart=%v",
			ErrInvalidSpeed, c.BaseSpeed, c.BoostStep, c.HinderStep, c.RestartDelay)
	}

	inside := interior(c.Width, c.Height)
	head := c.StartX + initialLength - 1
	if !inside.Contains(c.StartX, c.StartY) || !inside.Contains(head, c.StartY) {
		return fmt.Errorf("%w: (%d,%d)", ErrStartOutside, c.StartX, c.StartY)
	}
	if !inside.Contains(c.FoodX, c.FoodY) {
		return fmt.Errorf("%w: (%d,%d)", ErrFoodOutside, c.FoodX, c.FoodY)
	}
	if c.FoodY == c.StartY && c.FoodX >= c.StartX && c.FoodX <= head {
		return fmt.Errorf("%w: (%d,%d) is under the snake", ErrFoodOutside, c.FoodX, c.FoodY)
	}
	return nil
}
