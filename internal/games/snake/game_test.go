package snake

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// newTestGame returns a seeded game on a width x height board.
func newTestGame(t *testing.T, width, height int, seed int64) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	g, err := NewGameWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewGameWithConfig() failed: %v", err)
	}
	return g
}

// placeFoodAhead puts food of the given kind on the cell the head moves to next.
func placeFoodAhead(g *Game, kind FoodKind) {
	x, y := g.snake.NextHead(nil)
	g.food = Food{Exists: true, Kind: kind, Pos: Point{X: x, Y: y}}
}

func TestFreshGame(t *testing.T) {
	g := NewGame(10, 10)
	snap := g.Snapshot()

	expectedBody := []Point{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	if !reflect.DeepEqual(snap.Body, expectedBody) {
		t.Errorf("Body = %v, expected %v", snap.Body, expectedBody)
	}
	if snap.Dir != DirRight {
		t.Errorf("Dir = %v, expected right", snap.Dir)
	}
	expectedFood := Food{Exists: true, Kind: FoodPlain, Pos: Point{X: 6, Y: 4}}
	if snap.Food != expectedFood {
		t.Errorf("Food = %+v, expected %+v", snap.Food, expectedFood)
	}
	if snap.Speed != 0.1 {
		t.Errorf("Speed = %v, expected 0.1", snap.Speed)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected playing", snap.State)
	}
	if snap.WaitTime != 0 || snap.Score != 0 {
		t.Errorf("WaitTime = %v, Score = %d, expected zeros", snap.WaitTime, snap.Score)
	}
}

func TestBorderDeathScenario(t *testing.T) {
	g := NewGame(10, 10)
	g.snake = &Snake{
		body:      []Point{{X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5}},
		direction: DirLeft,
	}
	before := g.snake.Body()

	g.Update(0.2) // past the 0.1 threshold, forced move straight into x=0

	if !g.gameOver {
		t.Fatal("moving onto x=0 should end the game")
	}
	if !reflect.DeepEqual(g.snake.Body(), before) {
		t.Errorf("dead snake moved: %v, expected %v", g.snake.Body(), before)
	}
	if g.waitTime != 0 {
		t.Errorf("waitTime = %v, expected 0", g.waitTime)
	}
}

func TestBorderDeathAllEdges(t *testing.T) {
	tests := []struct {
		name string
		head Point
		dir  Direction
	}{
		{"left", Point{X: 1, Y: 4}, DirLeft},
		{"right", Point{X: 8, Y: 4}, DirRight},
		{"top", Point{X: 4, Y: 1}, DirUp},
		{"bottom", Point{X: 4, Y: 8}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(10, 10)
			g.snake = &Snake{body: []Point{tc.head}, direction: tc.dir}

			g.updateSnake(nil)

			if !g.gameOver {
				t.Errorf("moving %v from %v should end the game", tc.dir, tc.head)
			}
		})
	}
}

func TestMoveAlongBorderIsSafe(t *testing.T) {
	g := NewGame(10, 10)
	g.snake = &Snake{body: []Point{{X: 7, Y: 1}, {X: 6, Y: 1}}, direction: DirRight}

	g.updateSnake(nil) // to (8, 1), the last interior column

	if g.gameOver {
		t.Error("(8, 1) is interior and must be survivable")
	}
}

func TestSelfCollision(t *testing.T) {
	g := NewGame(10, 10)
	g.snake = &Snake{
		body: []Point{
			{X: 5, Y: 5}, // Head
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
		},
		direction: DirUp,
	}
	before := g.snake.Body()

	g.KeyPressed(core.ActionRight) // (6, 5) is occupied

	if !g.gameOver {
		t.Fatal("moving onto the body should end the game")
	}
	if !reflect.DeepEqual(g.snake.Body(), before) {
		t.Error("snake should not move on a fatal step")
	}
}

func TestTailCellCountsAsCollision(t *testing.T) {
	g := NewGame(10, 10)
	g.snake = &Snake{
		body:      []Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}},
		direction: DirUp,
	}

	g.KeyPressed(core.ActionRight) // onto the current tail

	if !g.gameOver {
		t.Error("the pre-move tail cell is part of the body and must be fatal")
	}
}

func TestNoReversal(t *testing.T) {
	g := NewGame(10, 10)
	g.waitTime = 0.05
	before := g.Snapshot()

	g.KeyPressed(core.ActionLeft)

	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Errorf("reverse key changed state: %+v, expected %+v", g.Snapshot(), before)
	}
}

func TestKeyForcesMove(t *testing.T) {
	g := NewGame(10, 10)
	g.waitTime = 0.05

	g.KeyPressed(core.ActionDown)

	if x, y := g.snake.HeadPosition(); x != 4 || y != 3 {
		t.Errorf("head = (%d, %d), expected (4, 3)", x, y)
	}
	if g.snake.HeadDirection() != DirDown {
		t.Errorf("heading = %v, expected down", g.snake.HeadDirection())
	}
	if g.waitTime != 0 {
		t.Errorf("waitTime = %v, expected reset to 0", g.waitTime)
	}
}

func TestUnmappedKeysAreIgnored(t *testing.T) {
	g := NewGame(10, 10)
	before := g.Snapshot()

	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionRestart, core.ActionQuit, core.Action(42)} {
		g.KeyPressed(a)
	}

	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("unmapped keys must not change the game")
	}
}

func TestKeysIgnoredWhileGameOver(t *testing.T) {
	g := NewGame(10, 10)
	g.gameOver = true
	g.waitTime = 0.3
	before := g.Snapshot()

	g.KeyPressed(core.ActionDown)

	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("keys must be ignored while the game is over")
	}
}

func TestGrowthInvariant(t *testing.T) {
	g := NewGame(10, 10)
	placeFoodAhead(g, FoodPlain)

	g.updateSnake(nil)
	if g.snake.BodyLength() != 3 {
		t.Fatalf("growth must not be immediate, length = %d", g.snake.BodyLength())
	}
	if g.food.Exists {
		t.Error("eaten food should be gone")
	}

	g.updateSnake(nil)
	if g.snake.BodyLength() != 4 {
		t.Errorf("length after next move = %d, expected 4", g.snake.BodyLength())
	}

	g.updateSnake(nil)
	if g.snake.BodyLength() != 4 {
		t.Errorf("growth must happen once, length = %d", g.snake.BodyLength())
	}
	assertConnected(t, g.snake.Body())
}

func TestShrinkInvariant(t *testing.T) {
	g := NewGame(10, 10)
	placeFoodAhead(g, FoodPoison)

	g.updateSnake(nil)

	if g.snake.BodyLength() != 2 {
		t.Errorf("poison should shrink immediately, length = %d", g.snake.BodyLength())
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
}

func TestShrinkToZeroRestarts(t *testing.T) {
	g := NewGame(10, 10)
	fresh := g.Snapshot()

	g.snake = &Snake{body: []Point{{X: 4, Y: 4}}, direction: DirRight}
	placeFoodAhead(g, FoodPoison)
	g.updateSnake(nil)

	if g.snake.BodyLength() != 0 {
		t.Fatalf("length = %d, expected 0", g.snake.BodyLength())
	}
	g.snake.RemoveTail()
	if g.snake.BodyLength() != 0 {
		t.Fatal("length must not underflow")
	}

	g.KeyPressed(core.ActionDown) // ignored for an empty snake
	if g.gameOver {
		t.Fatal("a key press on an empty snake must not end the game")
	}

	g.Update(0.01)
	if !reflect.DeepEqual(g.Snapshot(), fresh) {
		t.Errorf("empty snake should restart, got %+v", g.Snapshot())
	}
}

func TestSpeedBoostScenario(t *testing.T) {
	g := NewGame(10, 10)

	expected := []float64{0.06, 0.02, -0.02}
	for i, want := range expected {
		placeFoodAhead(g, FoodSpeedBoost)
		g.updateSnake(nil)
		if !approxEqual(g.speed, want) {
			t.Errorf("after boost %d speed = %v, expected %v", i+1, g.speed, want)
		}
	}
}

func TestNegativeSpeedMovesEveryUpdate(t *testing.T) {
	g := NewGame(20, 20)
	g.speed = -0.02
	x0, _ := g.snake.HeadPosition()

	g.Update(0)

	if x, _ := g.snake.HeadPosition(); x != x0+1 {
		t.Errorf("head x = %d, expected %d", x, x0+1)
	}
}

func TestSpeedHinderClamp(t *testing.T) {
	g := NewGame(20, 20)

	placeFoodAhead(g, FoodSpeedBoost)
	g.updateSnake(nil)

	for i := 0; i < 5; i++ {
		placeFoodAhead(g, FoodSpeedHinder)
		g.updateSnake(nil)
		if g.speed > g.cfg.BaseSpeed+epsilon {
			t.Fatalf("speed %v exceeded base %v", g.speed, g.cfg.BaseSpeed)
		}
	}
	if !approxEqual(g.speed, g.cfg.BaseSpeed) {
		t.Errorf("speed = %v, expected to settle at base %v", g.speed, g.cfg.BaseSpeed)
	}
}

func TestRestartDeterminism(t *testing.T) {
	g := newTestGame(t, 10, 10, 7)
	fresh := g.Snapshot()

	// Play a little, then die on the right wall.
	placeFoodAhead(g, FoodSpeedBoost)
	g.updateSnake(nil)
	for !g.gameOver {
		g.updateSnake(nil)
	}

	g.Update(0.5)
	if !g.gameOver {
		t.Fatal("restart must wait for the delay")
	}
	g.Update(0.4)
	if !g.gameOver {
		t.Fatal("0.9s is still within the restart delay")
	}
	g.Update(0.2)

	if !reflect.DeepEqual(g.Snapshot(), fresh) {
		t.Errorf("restarted state = %+v, expected %+v", g.Snapshot(), fresh)
	}
}

func TestUpdateSpawnsFoodWithoutMoving(t *testing.T) {
	g := newTestGame(t, 10, 10, 3)
	g.food.Exists = false
	before := g.snake.Body()

	g.Update(0.5)

	if !g.food.Exists {
		t.Fatal("Update should spawn food when none exists")
	}
	if !reflect.DeepEqual(g.snake.Body(), before) {
		t.Error("the spawning update must not also move the snake")
	}

	g.Update(0)
	if reflect.DeepEqual(g.snake.Body(), before) {
		t.Error("the next update should perform the overdue move")
	}
}

func TestUpdateWaitsForThreshold(t *testing.T) {
	g := NewGame(10, 10)
	before := g.snake.Body()

	g.Update(0.05)
	g.Update(0.05) // exactly 0.1 is not past the threshold

	if !reflect.DeepEqual(g.snake.Body(), before) {
		t.Error("snake moved before the speed threshold was exceeded")
	}

	g.Update(0.01)
	if reflect.DeepEqual(g.snake.Body(), before) {
		t.Error("snake should move once the threshold is exceeded")
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		legacy        bool
		maxY          int // exclusive
	}{
		{"square", 10, 10, false, 9},
		{"wide board uses height", 30, 8, false, 7},
		{"legacy on wide board stays inside", 30, 8, true, 7},
		{"legacy on tall board uses width range", 8, 30, true, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Width = tc.width
			cfg.Height = tc.height
			cfg.FoodX, cfg.FoodY = 5, 5
			cfg.LegacyFoodRange = tc.legacy
			cfg.Seed = 999
			g, err := NewGameWithConfig(cfg)
			if err != nil {
				t.Fatalf("NewGameWithConfig() failed: %v", err)
			}
			inside := interior(tc.width, tc.height)

			for i := 0; i < 200; i++ {
				g.addFood()
				f := g.food
				if !f.Exists {
					t.Fatal("food should exist after addFood")
				}
				if !inside.Contains(f.Pos.X, f.Pos.Y) {
					t.Fatalf("food spawned outside the interior at %v", f.Pos)
				}
				if f.Pos.Y >= tc.maxY {
					t.Fatalf("food y = %d, expected < %d", f.Pos.Y, tc.maxY)
				}
				if g.snake.OverlapTail(f.Pos.X, f.Pos.Y) {
					t.Fatalf("food spawned on the snake at %v", f.Pos)
				}
			}
		})
	}
}

func TestFoodSpawnAvoidsLongSnake(t *testing.T) {
	g := newTestGame(t, 8, 6, 11)

	// Fill every interior cell except (6, 4).
	var body []Point
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 6; x++ {
			if x == 6 && y == 4 {
				continue
			}
			body = append(body, Point{X: x, Y: y})
		}
	}
	g.snake = &Snake{body: body, direction: DirRight}

	g.addFood()

	if !g.food.Exists || g.food.Pos != (Point{X: 6, Y: 4}) {
		t.Errorf("food = %+v, expected the only free cell (6, 4)", g.food)
	}
}

func TestFoodSpawnFullBoard(t *testing.T) {
	g := NewGame(5, 3)
	g.snake = &Snake{body: []Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}, direction: DirRight}
	g.food.Exists = false

	g.addFood()

	if g.food.Exists {
		t.Error("no food can be placed when the snake fills the interior")
	}
}

func TestFoodKindsAllAppear(t *testing.T) {
	g := newTestGame(t, 20, 20, 5)
	seen := make(map[FoodKind]bool)

	for i := 0; i < 400; i++ {
		g.addFood()
		seen[g.food.Kind] = true
	}

	for _, k := range []FoodKind{FoodPlain, FoodPoison, FoodSpeedBoost, FoodSpeedHinder} {
		if !seen[k] {
			t.Errorf("food kind %v never spawned", k)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, 20, 20, 12345)
	g2 := newTestGame(t, 20, 20, 12345)

	keys := map[int]core.Action{20: core.ActionDown, 40: core.ActionLeft, 60: core.ActionUp, 75: core.ActionRight}
	for i := 0; i < 300; i++ {
		if a, ok := keys[i]; ok {
			g1.KeyPressed(a)
			g2.KeyPressed(a)
		}
		g1.Update(1.0 / 60)
		g2.Update(1.0 / 60)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestDraw(t *testing.T) {
	g := NewGame(10, 10)
	screen := core.NewScreen(10, 10)

	g.Draw(screen)

	for _, p := range g.snake.Body() {
		if c := screen.GetCell(p.X, p.Y); c.Color != snakeColor || c.Rune != core.BlockRune {
			t.Errorf("snake cell %v = %+v", p, c)
		}
	}
	if c := screen.GetCell(6, 4); c.Color != core.ColorRed {
		t.Errorf("plain food color = %v, expected red", c.Color)
	}
	for _, p := range []Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}, {5, 0}, {0, 5}, {9, 5}, {5, 9}} {
		if c := screen.GetCell(p.X, p.Y); c.Color != borderColor {
			t.Errorf("border cell %v color = %v, expected %v", p, c.Color, borderColor)
		}
	}
	if c := screen.GetCell(5, 5); c.Rune != ' ' {
		t.Errorf("empty interior cell drawn as %q", c.Rune)
	}
	if c := screen.GetCell(5, 5); c.Bg != core.ColorDefault {
		t.Error("overlay drawn while playing")
	}
}

func TestDrawFoodColors(t *testing.T) {
	expected := map[FoodKind]core.Color{
		FoodPlain:       core.ColorRed,
		FoodPoison:      core.ColorBlue,
		FoodSpeedBoost:  core.ColorMagenta,
		FoodSpeedHinder: core.ColorCyan,
	}

	for kind, color := range expected {
		g := NewGame(10, 10)
		g.food.Kind = kind
		screen := core.NewScreen(10, 10)
		g.Draw(screen)
		if c := screen.GetCell(6, 4); c.Color != color {
			t.Errorf("%v food drawn as %v, expected %v", kind, c.Color, color)
		}
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	g := NewGame(10, 10)
	g.gameOver = true
	before := g.Snapshot()
	screen := core.NewScreen(10, 10)

	g.Draw(screen)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if screen.GetCell(x, y).Bg != gameOverColor {
				t.Fatalf("cell (%d, %d) missing game-over tint", x, y)
			}
		}
	}
	if c := screen.GetCell(4, 2); c.Color != snakeColor {
		t.Error("the overlay must leave the snake visible")
	}
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("Draw must not change the game")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"default", func(*Config) {}, nil},
		{"tiny board", func(c *Config) { c.Width, c.Height = 4, 2 }, ErrBoardTooSmall},
		{"zero speed", func(c *Config) { c.BaseSpeed = 0 }, ErrInvalidSpeed},
		{"negative step", func(c *Config) { c.BoostStep = -1 }, ErrInvalidSpeed},
		{"start on border", func(c *Config) { c.StartX = 0 }, ErrStartOutside},
		{"head on border", func(c *Config) { c.Width = 8; c.StartX = 5 }, ErrStartOutside},
		{"food on border", func(c *Config) { c.FoodY = 19 }, ErrFoodOutside},
		{"food under snake", func(c *Config) { c.FoodX, c.FoodY = 3, 2 }, ErrFoodOutside},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}
