package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and the HUD.
type Snapshot struct {
	Width    int
	Height   int
	Body     []Point // Head first
	Dir      Direction
	Growing  bool
	Food     Food
	Speed    float64
	WaitTime float64
	Score    int
	State    GameStateType
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Width:    g.width,
		Height:   g.height,
		Body:     g.snake.Body(),
		Dir:      g.snake.HeadDirection(),
		Growing:  g.snake.growing,
		Food:     g.food,
		Speed:    g.speed,
		WaitTime: g.waitTime,
		Score:    g.score,
		State:    state,
	}
}

// Length returns the snake's body length.
func (s Snapshot) Length() int {
	return len(s.Body)
}
