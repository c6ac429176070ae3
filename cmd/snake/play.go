package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const defaultGame = "snake"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the standard game is started.

Controls:
  Arrows/WASD/HJKL  - Turn (and move at once)
  P/Esc             - Pause
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

The game restarts by itself shortly after the snake dies.

Difficulty options:
  easy   - Slower start, gentler speed changes
  normal - The classic tuning
  hard   - Faster start
  fixed  - Speed food has no effect

Examples:
  snake play
  snake play snake_classic
  snake play --difficulty easy
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'snake list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if c, ok := game.(registry.Configurable); ok {
		if err := c.LoadConfig(flagConfig, flagDifficulty); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	logger, closer, err := tui.OpenLog(flagLogFile)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
