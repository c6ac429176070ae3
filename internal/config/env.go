package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds settings that can come from the environment or a .env file.
// They are used as defaults for the matching command-line flags.
type Env struct {
	ConfigPath string // SNAKE_CONFIG
	Difficulty string // SNAKE_DIFFICULTY
	LogFile    string // SNAKE_LOG_FILE
	Seed       int64  // SNAKE_SEED
}

// LoadEnv loads the given .env files (or ./.env when none are given) if they
// exist and reads the SNAKE_* variables. Variables already set in the process
// environment win over .env entries.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	env := Env{
		ConfigPath: os.Getenv("SNAKE_CONFIG"),
		Difficulty: os.Getenv("SNAKE_DIFFICULTY"),
		LogFile:    os.Getenv("SNAKE_LOG_FILE"),
	}

	if raw, ok := os.LookupEnv("SNAKE_SEED"); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return env, fmt.Errorf("SNAKE_SEED must be an integer: %w", err)
		}
		env.Seed = seed
	}
	return env, nil
}
