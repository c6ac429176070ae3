// snake is a terminal Snake game.
//
// Usage:
//
//	snake                    - Play the standard game
//	snake play [game]        - Play a registered variant (snake, snake_classic)
//	snake list               - List available variants
//	snake config             - Print the effective YAML configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write session logs to a file
//
// SNAKE_CONFIG, SNAKE_DIFFICULTY, SNAKE_LOG_FILE and SNAKE_SEED (also read
// from ./.env) provide the flag defaults.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(env).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(env config.Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "snake",
		Short: "Snake - eat, grow and don't bite yourself",
		Long: `Snake in your terminal.

Food colors:
  red      - grow by one
  blue     - poison, shrink by one
  magenta  - speed up
  cyan     - slow down (never slower than the starting speed)

Examples:
  snake
  snake play snake_classic
  snake --difficulty hard --seed 42
  snake config > ~/.snake/configs/snake.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, nil)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogFile, "log-file", env.LogFile, "Write session logs to this file")

	root.AddCommand(playCmd)
	root.AddCommand(listCmd)
	root.AddCommand(configCmd)
	return root
}
