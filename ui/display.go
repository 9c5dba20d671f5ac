package ui

import (
	"github.com/pkg/errors"

	"snake-term/config"
	"snake-term/game"
	"snake-term/game/types"
)

// Display is a renderer that also supplies the player's keys.
type Display interface {
	game.Renderer
	game.KeySource
	Close()
}

// Open starts the display backend selected in cfg.
func Open(cfg config.Config) (Display, error) {
	switch cfg.Display {
	case config.DisplayTerminal:
		t, err := OpenTerminal()
		if err != nil {
			return nil, err
		}
		return t, nil
	case config.DisplayWindow:
		return OpenWindow(types.Grid{Width: cfg.Width, Height: cfg.Height})
	}
	return nil, errors.Errorf("unknown display %q", cfg.Display)
}
