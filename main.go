package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"snake-term/ai"
	"snake-term/config"
	"snake-term/game"
	"snake-term/game/types"
	"snake-term/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	display, err := ui.Open(cfg)
	if err != nil {
		log.Error().Err(err).Str("display", cfg.Display).Msg("failed to open display")
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	defer display.Close()

	g := game.NewGame(types.Grid{Width: cfg.Width, Height: cfg.Height}, rand.New(rand.NewSource(seed)))

	var keys game.KeySource = display
	if cfg.Autopilot {
		keys = ai.NewAutopilot(g.Snapshot, display, rand.New(rand.NewSource(seed+1)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Uint64("seed", seed).Bool("autopilot", cfg.Autopilot).Msg("starting snake")
	score := game.NewSession(g, cfg, display, keys).Run(ctx)
	log.Info().Int("score", score).Str("reason", g.Reason().String()).Msg("snake exited")
	return 0
}

// setupLogging points the global logger at the configured file. The terminal belongs to the
// display, so without a file nothing is logged.
func setupLogging(cfg config.Config) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.Logger = zerolog.New(f).With().
		Timestamp().
		Str("session", uuid.New().String()).
		Logger()
	return func() { f.Close() }, nil
}
