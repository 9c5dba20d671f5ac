//go:build raylib

package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-term/game"
	"snake-term/game/types"
	"snake-term/input"
)

const (
	cellSize = 20
	fontSize = 20
)

// raylib key codes translated into the tcell vocabulary used by input.Map.
var windowKeys = map[int32]tcell.Key{
	rl.KeyLeft:   tcell.KeyLeft,
	rl.KeyRight:  tcell.KeyRight,
	rl.KeyUp:     tcell.KeyUp,
	rl.KeyDown:   tcell.KeyDown,
	rl.KeyEscape: tcell.KeyEscape,
	rl.KeyEnter:  tcell.KeyEnter,
}

// Window draws the board in a raylib window, one cell per grid position.
type Window struct {
	grid types.Grid
}

// OpenWindow creates a window sized for grid plus its frame and status lines.
func OpenWindow(grid types.Grid) (Display, error) {
	width := int32((grid.Width + 2) * cellSize)
	height := int32((grid.Height + 5) * cellSize)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, "Snake")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	return &Window{grid: grid}, nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// ReadKey polls the window until a key is pressed or timeout elapses.
// Closing the window reads as Escape.
func (w *Window) ReadKey(timeout time.Duration) (input.Key, bool) {
	deadline := time.Now().Add(timeout)
	for {
		if key, ok := w.poll(); ok {
			return key, true
		}
		if time.Now().After(deadline) {
			return input.Key{}, false
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (w *Window) WaitKey(ctx context.Context) (input.Key, bool) {
	for {
		if key, ok := w.poll(); ok {
			return key, true
		}
		select {
		case <-ctx.Done():
			return input.Key{}, false
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (w *Window) poll() (input.Key, bool) {
	rl.PollInputEvents()
	if rl.WindowShouldClose() {
		return input.Key{Code: tcell.KeyEscape}, true
	}
	if code := rl.GetKeyPressed(); code != 0 {
		if k, ok := windowKeys[code]; ok {
			return input.Key{Code: k}, true
		}
	}
	if ch := rl.GetCharPressed(); ch != 0 {
		return input.RuneKey(rune(ch)), true
	}
	return input.Key{}, false
}

func (w *Window) DrawMenu() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	for i, line := range MenuLines {
		rl.DrawText(line, cellSize, int32((i+1)*cellSize), fontSize, rl.White)
	}
	rl.EndDrawing()
}

func (w *Window) Draw(s game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	w.drawBoard(s)
	rl.EndDrawing()
}

func (w *Window) DrawNotice(s game.Snapshot, msg string) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	w.drawBoard(s)
	rl.DrawText(msg, 0, int32((s.Grid.Height+4)*cellSize), fontSize, rl.Yellow)
	rl.EndDrawing()
}

func (w *Window) DrawFinal(s game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawText("Game ended.", cellSize, cellSize, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Your Final Score: %d", s.Score), cellSize, 2*cellSize, fontSize, rl.White)
	rl.EndDrawing()
}

func (w *Window) drawBoard(s game.Snapshot) {
	grid := s.Grid
	for row := 0; row <= grid.Height+1; row++ {
		for col := 0; col <= grid.Width+1; col++ {
			if grid.IsWall(row, col) {
				w.fillCell(col, row, rl.DarkGray)
			}
		}
	}

	for _, p := range s.Body {
		w.fillCell(p.X, p.Y, rl.DarkGreen)
	}
	if grid.Contains(s.Food) {
		w.fillCell(s.Food.X, s.Food.Y, rl.Red)
	}
	if grid.Contains(s.Head) {
		w.fillCell(s.Head.X, s.Head.Y, rl.Green)
	}

	rl.DrawText(fmt.Sprintf("Score %d", s.Score), 0, int32((grid.Height+3)*cellSize), fontSize, rl.White)
}

func (w *Window) fillCell(x, y int, color rl.Color) {
	rl.DrawRectangle(int32(x*cellSize)+1, int32(y*cellSize)+1, cellSize-2, cellSize-2, color)
}
