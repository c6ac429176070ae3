package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "snake_classic"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Snake (Classic Spawn)"
	}
	return "Snake"
}

// LoadConfig reads the YAML config at path (or the default search path when
// empty), applies the difficulty preset and installs the result. It takes
// effect immediately and survives later Resets.
func (g *Game) LoadConfig(path, difficulty string) error {
	fileCfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	fixed := false
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return err
		}
		config.ApplySnakePreset(&fileCfg, preset)
		fixed = config.IsFixedPreset(preset)
	}

	cfg := FromFile(fileCfg)
	cfg.Seed = g.base.Seed
	if err := validateFitted(cfg); err != nil {
		return fmt.Errorf("snake config: %w", err)
	}

	g.base = cfg
	g.fixedSpeed = fixed
	g.apply(g.fit(cfg, 0, 0))
	return nil
}

// FromFile converts the YAML config into game tunables. A zero board
// dimension is kept as zero and means "fit the screen" at Reset.
func FromFile(c config.SnakeConfig) Config {
	return Config{
		Width:           c.Board.Width,
		Height:          c.Board.Height,
		BaseSpeed:       c.Speed.Base,
		BoostStep:       c.Speed.BoostStep,
		HinderStep:      c.Speed.HinderStep,
		RestartDelay:    c.Timing.RestartDelay,
		StartX:          c.Start.X,
		StartY:          c.Start.Y,
		FoodX:           c.Food.StartX,
		FoodY:           c.Food.StartY,
		LegacyFoodRange: c.Food.LegacyYRange,
	}
}

// validateFitted validates cfg as it would look on the default board when
// one of its dimensions is left to the screen.
func validateFitted(cfg Config) error {
	def := DefaultConfig()
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	return cfg.Validate()
}

// fit fills zero board dimensions from the available screen cells. The
// result never drops below the smallest board the start layout needs.
func (g *Game) fit(cfg Config, screenW, screenH int) Config {
	def := DefaultConfig()
	minW := max(minBoardWidth, cfg.StartX+initialLength+1, cfg.FoodX+2)
	minH := max(minBoardHeight, cfg.StartY+2, cfg.FoodY+2)

	if cfg.Width == 0 {
		cfg.Width = def.Width
		if screenW > 0 {
			cfg.Width = max(screenW, minW)
		}
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
		if screenH > 0 {
			cfg.Height = max(screenH, minH)
		}
	}
	return cfg
}

// Reset rebuilds the game for a new session. Screen dimensions are in board
// cells and only matter when the configured board size is zero.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := g.fit(g.base, rc.ScreenW, rc.ScreenH)
	cfg.Seed = rc.Seed
	g.tickSeconds = rc.TickSeconds()
	g.apply(cfg)
}

// Resize refits a board whose size follows the screen and starts a new round
// on it. It reports whether the board changed; fixed boards never do.
func (g *Game) Resize(screenW, screenH int) bool {
	cfg := g.fit(g.base, screenW, screenH)
	if cfg.Width == g.width && cfg.Height == g.height {
		return false
	}
	cfg.Seed = g.cfg.Seed
	g.apply(cfg)
	return true
}

// Step advances the game by one platform tick: each direction action in the
// frame is delivered as a key press, then the clock moves by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	for _, a := range input.Ordered() {
		g.KeyPressed(a)
	}
	g.Update(g.tickSeconds)
	return core.StepResult{State: g.State()}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Status returns the one-line HUD text.
func (g *Game) Status() string {
	snap := g.Snapshot()
	food := "none"
	if snap.Food.Exists {
		food = snap.Food.Kind.String()
	}
	speed := fmt.Sprintf("%.2fs", snap.Speed)
	if g.fixedSpeed {
		speed += " (fixed)"
	}
	return fmt.Sprintf("%s  Length: %d  Score: %d  Speed: %s  Food: %s",
		g.Title(), snap.Length(), snap.Score, speed, food)
}
