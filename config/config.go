package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read as defaults, possibly from a .env file.
const (
	EnvPlayers = "THREE13_PLAYERS"
	EnvSeed    = "THREE13_SEED"
	EnvDebug   = "THREE13_DEBUG"
)

const (
	DefaultPlayers = 2
	MinPlayers     = 2
	MaxPlayers     = 4
)

var ErrInvalidPlayers = errors.New("game requires between 2 - 4 players")

// Config holds the startup parameters of a game.
type Config struct {
	Players int
	Seed    uint64 // 0 selects the non-reproducible source
	Debug   bool
}

// Load reads the configuration: built-in defaults, then the environment
// (after loading .env files from envFiles, or ".env" when none is given),
// then command line flags in args.
func Load(args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Config{Players: DefaultPlayers}
	if err := cfg.fromEnv(); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("three-thirteen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of players (2-4)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed, 0 for a random game")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	return cfg, cfg.Validate()
}

func (c *Config) fromEnv() error {
	if v, ok := os.LookupEnv(EnvPlayers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPlayers, err)
		}
		c.Players = n
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	return nil
}

// Validate checks the player count is within [2, 4].
func (c Config) Validate() error {
	if c.Players < MinPlayers || c.Players > MaxPlayers {
		return fmt.Errorf("%w, got %d", ErrInvalidPlayers, c.Players)
	}
	return nil
}
