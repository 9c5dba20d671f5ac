package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snake-term/game"
	"snake-term/input"
)

// Glyphs used on the board.
const (
	HeadGlyph = 'O'
	BodyGlyph = 'o'
	FoodGlyph = 'X'
)

// MenuLines is the difficulty prompt shown before the game starts.
var MenuLines = []string{
	"--- WELCOME TO SNAKE! ---",
	"Choose your settings!",
	"",
	"Difficulty",
	"[1] Easy",
	"[2] Intermediate",
	"[3] Expert",
}

var (
	wallStyle = tcell.StyleDefault
	headStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	bodyStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle = tcell.StyleDefault
)

// Terminal renders frames on a tcell screen and reads keys from it.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
}

// OpenTerminal takes over the controlling terminal.
func OpenTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	return NewTerminal(screen), nil
}

// NewTerminal wraps an initialized screen and starts pumping its events.
func NewTerminal(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
	}
	go t.pump()
	return t
}

// pump forwards the blocking PollEvent into a channel so reads can time out.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// ReadKey waits at most timeout for a key press. Resize events are handled and skipped.
func (t *Terminal) ReadKey(timeout time.Duration) (input.Key, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return input.Key{}, false
			}
			if key, ok := t.keyFrom(ev); ok {
				return key, true
			}
		case <-timer.C:
			return input.Key{}, false
		}
	}
}

// WaitKey blocks until a key press arrives or ctx is done.
func (t *Terminal) WaitKey(ctx context.Context) (input.Key, bool) {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return input.Key{}, false
			}
			if key, ok := t.keyFrom(ev); ok {
				return key, true
			}
		case <-ctx.Done():
			return input.Key{}, false
		}
	}
}

func (t *Terminal) keyFrom(ev tcell.Event) (input.Key, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return input.FromEvent(ev), true
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return input.Key{}, false
}

func (t *Terminal) DrawMenu() {
	t.screen.Clear()
	for i, line := range MenuLines {
		t.drawText(0, i, line, textStyle)
	}
	t.screen.Show()
}

// Draw redraws the whole frame: walls, snake, food and the score line.
func (t *Terminal) Draw(s game.Snapshot) {
	t.screen.Clear()
	t.drawBoard(s)
	t.screen.Show()
}

// DrawNotice draws the frame with msg on the line below the score.
func (t *Terminal) DrawNotice(s game.Snapshot, msg string) {
	t.screen.Clear()
	t.drawBoard(s)
	t.drawText(0, s.Grid.Height+4, msg, textStyle)
	t.screen.Show()
}

func (t *Terminal) DrawFinal(s game.Snapshot) {
	t.screen.Clear()
	t.drawText(0, 0, "Game ended.", textStyle)
	t.drawText(0, 1, fmt.Sprintf("Your Final Score: %d", s.Score), textStyle)
	t.screen.Show()
}

func (t *Terminal) drawBoard(s game.Snapshot) {
	grid := s.Grid
	for row := 0; row <= grid.Height+1; row++ {
		for col := 0; col <= grid.Width+1; col++ {
			if glyph := grid.WallGlyph(row, col); glyph != 0 {
				t.screen.SetContent(col, row, glyph, nil, wallStyle)
			}
		}
	}

	for _, p := range s.Body {
		t.screen.SetContent(p.X, p.Y, BodyGlyph, nil, bodyStyle)
	}
	if grid.Contains(s.Food) {
		t.screen.SetContent(s.Food.X, s.Food.Y, FoodGlyph, nil, foodStyle)
	}
	if grid.Contains(s.Head) {
		t.screen.SetContent(s.Head.X, s.Head.Y, HeadGlyph, nil, headStyle)
	}

	t.drawText(0, grid.Height+3, fmt.Sprintf("Score %d", s.Score), textStyle)
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}
