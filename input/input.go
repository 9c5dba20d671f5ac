// Package input turns raw key presses into game intents.
package input

import (
	"github.com/gdamore/tcell/v2"

	"snake-term/game/types"
)

// Key is a raw key press. Code uses tcell's key vocabulary; Rune is set when Code is tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// RuneKey builds a printable key press.
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: r}
}

// FromEvent converts a tcell key event.
func FromEvent(ev *tcell.EventKey) Key {
	return Key{Code: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}
}

// Intent is what a key press asks the game to do.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentUp
	IntentDown
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the heading an intent selects; Quit and None map to types.None.
func (i Intent) Direction() types.Direction {
	switch i {
	case IntentLeft:
		return types.Left
	case IntentRight:
		return types.Right
	case IntentUp:
		return types.Up
	case IntentDown:
		return types.Down
	default:
		return types.None
	}
}

// ForDirection is the inverse of Intent.Direction.
func ForDirection(d types.Direction) Intent {
	switch d {
	case types.Left:
		return IntentLeft
	case types.Right:
		return IntentRight
	case types.Up:
		return IntentUp
	case types.Down:
		return IntentDown
	default:
		return IntentNone
	}
}

var specialKeys = map[tcell.Key]Intent{
	tcell.KeyLeft:   IntentLeft,
	tcell.KeyRight:  IntentRight,
	tcell.KeyUp:     IntentUp,
	tcell.KeyDown:   IntentDown,
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlC:  IntentQuit,
}

// Arrow keys are primary; hjkl and wasd are aliases.
var runeKeys = map[rune]Intent{
	'q': IntentQuit,
	'Q': IntentQuit,
	'h': IntentLeft,
	'j': IntentDown,
	'k': IntentUp,
	'l': IntentRight,
	'a': IntentLeft,
	's': IntentDown,
	'w': IntentUp,
	'd': IntentRight,
}

// Map translates a key press into an intent. Unknown keys are IntentNone.
func Map(k Key) Intent {
	if k.Code == tcell.KeyRune {
		return runeKeys[k.Rune]
	}
	return specialKeys[k.Code]
}

// KeyFor returns the arrow key that selects d.
func KeyFor(d types.Direction) Key {
	switch d {
	case types.Left:
		return Key{Code: tcell.KeyLeft}
	case types.Right:
		return Key{Code: tcell.KeyRight}
	case types.Up:
		return Key{Code: tcell.KeyUp}
	case types.Down:
		return Key{Code: tcell.KeyDown}
	default:
		return Key{}
	}
}
