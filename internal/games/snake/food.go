package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// FoodKind is the closed set of food types. Each kind has its own color and
// its own effect when eaten (see Game.consume).
type FoodKind int

const (
	FoodPlain FoodKind = iota
	FoodPoison
	FoodSpeedBoost
	FoodSpeedHinder

	foodKindCount = 4
)

func (k FoodKind) String() string {
	switch k {
	case FoodPlain:
		return "plain"
	case FoodPoison:
		return "poison"
	case FoodSpeedBoost:
		return "speed-boost"
	case FoodSpeedHinder:
		return "speed-hinder"
	default:
		return "unknown"
	}
}

// Color returns the render color of the food kind.
func (k FoodKind) Color() core.Color {
	switch k {
	case FoodPoison:
		return core.ColorBlue
	case FoodSpeedBoost:
		return core.ColorMagenta
	case FoodSpeedHinder:
		return core.ColorCyan
	default:
		return core.ColorRed
	}
}

// Food is the single food item on the board.
type Food struct {
	Exists bool
	Kind   FoodKind
	Pos    Point
}
