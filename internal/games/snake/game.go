package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Render colors for the board.
const (
	snakeColor    = core.ColorGreen
	borderColor   = core.ColorGray
	gameOverColor = core.ColorDarkRed
)

// maxSpawnAttempts bounds rejection sampling before falling back to a scan
// of the free cells.
const maxSpawnAttempts = 1000

// Variant selects how food positions are drawn.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantClassic  Variant = "classic"
)

// Game implements the Snake game. All state is owned by the value; the
// platform drives it through KeyPressed, Update and Draw from a single goroutine.
type Game struct {
	variant Variant
	cfg     Config
	rng     *rand.Rand

	snake *Snake
	food  Food

	width  int
	height int

	gameOver bool
	waitTime float64 // Seconds since the last forced move
	speed    float64 // Seconds between forced moves, lower is faster
	score    int     // Food eaten since the last restart

	base        Config  // As configured, before Reset fits it to the screen
	tickSeconds float64 // Platform tick length used by Step
	fixedSpeed  bool    // Loaded with the fixed difficulty preset
}

// NewGame creates a game on a width x height board with default tuning and a
// time-based seed.
func NewGame(width, height int) *Game {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = time.Now().UnixNano()
	return build(VariantStandard, cfg)
}

// NewGameWithConfig creates a game from a validated config.
func NewGameWithConfig(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return build(VariantStandard, cfg), nil
}

// New creates a standard Snake game with the default 20x20 board.
func New() *Game {
	return build(VariantStandard, DefaultConfig())
}

// NewClassic creates a Snake game that spawns food with the legacy y range.
func NewClassic() *Game {
	cfg := DefaultConfig()
	cfg.LegacyFoodRange = true
	return build(VariantClassic, cfg)
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_classic", func() registry.Game {
		return NewClassic()
	})
}

func build(variant Variant, cfg Config) *Game {
	g := &Game{
		variant:     variant,
		base:        cfg,
		tickSeconds: core.DefaultConfig().TickSeconds(),
	}
	g.apply(cfg)
	return g
}

// apply installs cfg and puts the game into its starting state.
func (g *Game) apply(cfg Config) {
	if g.variant == VariantClassic {
		cfg.LegacyFoodRange = true
	}
	g.cfg = cfg
	g.width = cfg.Width
	g.height = cfg.Height
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.restart()
}

// KeyPressed handles one key event. Only direction actions do anything: they
// force an immediate move unless they would reverse the snake. Keys are
// ignored while the game is over.
func (g *Game) KeyPressed(a core.Action) {
	if g.gameOver || g.snake.BodyLength() == 0 {
		return
	}

	var dir Direction
	switch a {
	case core.ActionUp:
		dir = DirUp
	case core.ActionDown:
		dir = DirDown
	case core.ActionLeft:
		dir = DirLeft
	case core.ActionRight:
		dir = DirRight
	default:
		return
	}

	if dir == g.snake.HeadDirection().Opposite() {
		return
	}
	g.updateSnake(&dir)
}

// Update advances the wait timer by dt seconds and performs at most one of:
// restart after game over, restart of an empty snake, food spawn, forced move.
func (g *Game) Update(dt float64) {
	g.waitTime += dt

	switch {
	case g.gameOver:
		if g.waitTime > g.cfg.RestartDelay {
			g.restart()
		}
	case g.snake.BodyLength() == 0:
		g.restart()
	case !g.food.Exists:
		g.addFood()
	case g.waitTime > g.speed:
		g.updateSnake(nil)
	}
}

// updateSnake performs one forced move. The move is fatal if the next head
// leaves the interior or lands on the current body; a dead snake stays put.
func (g *Game) updateSnake(dir *Direction) {
	if g.alive(dir) {
		g.snake.MoveForward(dir)
		g.checkEating()
	} else {
		g.gameOver = true
	}
	g.waitTime = 0
}

func (g *Game) alive(dir *Direction) bool {
	x, y := g.snake.NextHead(dir)
	if g.snake.OverlapTail(x, y) {
		return false
	}
	return interior(g.width, g.height).Contains(x, y)
}

func (g *Game) checkEating() {
	x, y := g.snake.HeadPosition()
	if !g.food.Exists || g.food.Pos != (Point{X: x, Y: y}) {
		return
	}
	g.food.Exists = false
	g.score++
	g.consume(g.food.Kind)
}

// consume applies the effect of an eaten food kind.
func (g *Game) consume(kind FoodKind) {
	switch kind {
	case FoodPlain:
		g.snake.RestoreTail()
	case FoodPoison:
		g.snake.RemoveTail()
	case FoodSpeedBoost:
		// No floor: a negative threshold forces a move on every update.
		g.speed -= g.cfg.BoostStep
	case FoodSpeedHinder:
		g.speed += g.cfg.HinderStep
		if g.speed > g.cfg.BaseSpeed {
			g.speed = g.cfg.BaseSpeed
		}
	}
}

// addFood places a food of random kind on a random free interior cell.
// When the snake fills the interior no food is placed.
func (g *Game) addFood() {
	pos, ok := g.sampleFreeCell()
	if !ok {
		pos, ok = g.pickFreeCell()
	}
	if !ok {
		return
	}

	g.food = Food{
		Exists: true,
		Kind:   FoodKind(g.rng.Intn(foodKindCount)),
		Pos:    pos,
	}
}

func (g *Game) sampleFreeCell() (Point, bool) {
	inside := interior(g.width, g.height)
	yRange := g.height - 2
	if g.cfg.LegacyFoodRange {
		yRange = g.width - 2
	}
	if g.width-2 <= 0 || yRange <= 0 {
		return Point{}, false
	}

	for range maxSpawnAttempts {
		p := Point{
			X: 1 + g.rng.Intn(g.width-2),
			Y: 1 + g.rng.Intn(yRange),
		}
		if inside.Contains(p.X, p.Y) && !g.snake.OverlapTail(p.X, p.Y) {
			return p, true
		}
	}
	return Point{}, false
}

// pickFreeCell chooses uniformly among every free interior cell.
func (g *Game) pickFreeCell() (Point, bool) {
	inside := interior(g.width, g.height)
	free := make([]Point, 0, max(inside.Area()-g.snake.BodyLength(), 0))
	for y := inside.Y; y < inside.Bottom(); y++ {
		for x := inside.X; x < inside.Right(); x++ {
			if !g.snake.OverlapTail(x, y) {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[g.rng.Intn(len(free))], true
}

// restart puts the game back into its starting state. The rng keeps its
// position so later food spawns differ between rounds.
func (g *Game) restart() {
	g.snake = NewSnake(g.cfg.StartX, g.cfg.StartY)
	g.waitTime = 0
	g.food = Food{
		Exists: true,
		Kind:   FoodPlain,
		Pos:    Point{X: g.cfg.FoodX, Y: g.cfg.FoodY},
	}
	g.gameOver = false
	g.speed = g.cfg.BaseSpeed
	g.score = 0
}

// Draw renders the board onto s: snake, food, border, then the game-over tint.
func (g *Game) Draw(s core.Surface) {
	for _, seg := range g.snake.Body() {
		core.DrawBlock(s, snakeColor, seg.X, seg.Y)
	}

	if g.food.Exists {
		core.DrawBlock(s, g.food.Kind.Color(), g.food.Pos.X, g.food.Pos.Y)
	}

	core.DrawRectangle(s, borderColor, core.NewRect(0, 0, g.width, 1))
	core.DrawRectangle(s, borderColor, core.NewRect(0, g.height-1, g.width, 1))
	core.DrawRectangle(s, borderColor, core.NewRect(0, 0, 1, g.height))
	core.DrawRectangle(s, borderColor, core.NewRect(g.width-1, 0, 1, g.height))

	if g.gameOver {
		core.ShadeRectangle(s, gameOverColor, board(g.width, g.height))
	}
}

// interior is the board minus its one-cell border ring.
func interior(width, height int) core.Rect {
	return board(width, height).Inset(1)
}

func board(width, height int) core.Rect {
	return core.NewRect(0, 0, width, height)
}

// Width returns the board width in cells.
func (g *Game) Width() int {
	return g.width
}

// Height returns the board height in cells.
func (g *Game) Height() int {
	return g.height
}
