// Package config resolves game settings from a .env file, the environment and command-line flags.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Difficulty selects the tick interval.
type Difficulty int

const (
	Unset Difficulty = iota
	Easy
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unset"
	}
}

// DifficultyFromKey maps the startup prompt answer; anything but '1', '2' or '3' is Medium.
func DifficultyFromKey(r rune) Difficulty {
	switch r {
	case '1':
		return Easy
	case '2':
		return Medium
	case '3':
		return Hard
	default:
		return Medium
	}
}

// ParseDifficulty accepts a name or the prompt digit. The empty string is Unset.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unset, nil
	case "1", "easy":
		return Easy, nil
	case "2", "medium":
		return Medium, nil
	case "3", "hard":
		return Hard, nil
	}
	return Unset, errors.Errorf("unknown difficulty %q", s)
}

const (
	DefaultWidth      = 40
	DefaultHeight     = 20
	DefaultKeyTimeout = 20 * time.Millisecond
	DefaultQuitPause  = 500 * time.Millisecond
	DefaultEndPause   = 5 * time.Second
)

// DefaultIntervals is the delay after each tick for every difficulty.
var DefaultIntervals = map[Difficulty]time.Duration{
	Easy:   200 * time.Millisecond,
	Medium: 100 * time.Millisecond,
	Hard:   60 * time.Millisecond,
}

// Display backends.
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

type Config struct {
	Width  int
	Height int

	// Difficulty is Unset when the player should be asked at startup.
	Difficulty Difficulty
	Intervals  map[Difficulty]time.Duration
	// Speed overrides the difficulty interval when non-zero.
	Speed time.Duration

	KeyTimeout time.Duration
	QuitPause  time.Duration
	EndPause   time.Duration

	// Seed fixes food placement; zero means seed from the clock.
	Seed      uint64
	Autopilot bool
	Display   string

	LogFile  string
	LogLevel string
}

// Default returns the built-in settings.
func Default() Config {
	intervals := make(map[Difficulty]time.Duration, len(DefaultIntervals))
	for d, v := range DefaultIntervals {
		intervals[d] = v
	}
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Intervals:  intervals,
		KeyTimeout: DefaultKeyTimeout,
		QuitPause:  DefaultQuitPause,
		EndPause:   DefaultEndPause,
		Display:    DisplayTerminal,
		LogLevel:   "info",
	}
}

// TickInterval is the pacing delay for d, honoring the Speed override.
func (c Config) TickInterval(d Difficulty) time.Duration {
	if c.Speed > 0 {
		return c.Speed
	}
	if v, ok := c.Intervals[d]; ok {
		return v
	}
	return c.Intervals[Medium]
}

// Validate checks the settings the game cannot run without.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return errors.Errorf("board must be at least 2x2, got %dx%d", c.Width, c.Height)
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if c.Intervals[d] <= 0 {
			return errors.Errorf("tick interval for %s must be positive", d)
		}
	}
	if c.Speed < 0 || c.KeyTimeout < 0 || c.QuitPause < 0 || c.EndPause < 0 {
		return errors.New("durations must not be negative")
	}
	switch c.Display {
	case DisplayTerminal, DisplayWindow:
	default:
		return errors.Errorf("unknown display %q", c.Display)
	}
	return nil
}

// Load builds a Config from .env, the environment and args (without the program name).
// Flags win over environment values, which win over defaults.
func Load(args []string) (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := Default()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, errors.Wrap(err, "environment")
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	difficulty := fs.String("difficulty", "", "easy|medium|hard (or 1|2|3); empty asks at startup")
	speed := fs.Int("speed", int(cfg.Speed/time.Millisecond), "tick interval in milliseconds, overrides difficulty (0 = off)")
	fs.DurationVar(&cfg.KeyTimeout, "key-timeout", cfg.KeyTimeout, "how long each tick waits for a key")
	fs.DurationVar(&cfg.EndPause, "end-pause", cfg.EndPause, "how long the final score stays on screen")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed (0 = random)")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "let the computer steer")
	fs.StringVar(&cfg.Display, "display", cfg.Display, "terminal|window")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "flags")
	}

	if *difficulty != "" {
		d, err := ParseDifficulty(*difficulty)
		if err != nil {
			return Config{}, err
		}
		cfg.Difficulty = d
	}
	cfg.Speed = time.Duration(*speed) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("SNAKE_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "SNAKE_WIDTH")
		}
		c.Width = n
	}
	if v := getenv("SNAKE_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "SNAKE_HEIGHT")
		}
		c.Height = n
	}
	if v := getenv("SNAKE_DIFFICULTY"); v != "" {
		d, err := ParseDifficulty(v)
		if err != nil {
			return errors.Wrap(err, "SNAKE_DIFFICULTY")
		}
		c.Difficulty = d
	}
	if v := getenv("SNAKE_SPEED"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "SNAKE_SPEED")
		}
		c.Speed = time.Duration(n) * time.Millisecond
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "SNAKE_SEED")
		}
		c.Seed = n
	}
	if v := getenv("SNAKE_AUTOPILOT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "SNAKE_AUTOPILOT")
		}
		c.Autopilot = b
	}
	if v := getenv("SNAKE_DISPLAY"); v != "" {
		c.Display = v
	}
	if v := getenv("SNAKE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}
