//go:build !raylib

package ui

import (
	"github.com/pkg/errors"

	"snake-term/game/types"
)

// OpenWindow is only available in builds tagged raylib.
func OpenWindow(grid types.Grid) (Display, error) {
	return nil, errors.New("window display not compiled in; rebuild with -tags raylib")
}
