package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"snake-term/config"
	"snake-term/input"
)

// QuitNotice is shown under the board when the player quits.
const QuitNotice = "Q was pressed. Quitting Game..."

// Renderer draws frames. Implementations own every terminal or window detail.
type Renderer interface {
	DrawMenu()
	Draw(s Snapshot)
	DrawNotice(s Snapshot, msg string)
	DrawFinal(s Snapshot)
}

// KeySource delivers raw key presses.
type KeySource interface {
	// ReadKey waits at most timeout for a key press.
	ReadKey(timeout time.Duration) (input.Key, bool)
	// WaitKey blocks until a key arrives or ctx is done.
	WaitKey(ctx context.Context) (input.Key, bool)
}

// Session runs one game from the difficulty prompt to the final score screen.
type Session struct {
	game     *Game
	cfg      config.Config
	renderer Renderer
	keys     KeySource

	// Sleep paces the loop; tests replace it.
	Sleep func(time.Duration)
}

func NewSession(g *Game, cfg config.Config, renderer Renderer, keys KeySource) *Session {
	return &Session{
		game:     g,
		cfg:      cfg,
		renderer: renderer,
		keys:     keys,
		Sleep:    time.Sleep,
	}
}

func (s *Session) Game() *Game {
	return s.game
}

// SelectDifficulty shows the prompt and reads one key. Anything but 1, 2 or 3 selects Medium.
func (s *Session) SelectDifficulty(ctx context.Context) config.Difficulty {
	s.renderer.DrawMenu()
	key, ok := s.keys.WaitKey(ctx)
	if !ok || key.Code != tcell.KeyRune {
		return config.Medium
	}
	return config.DifficultyFromKey(key.Rune)
}

// Run plays until the game terminates and returns the final score.
// ctx is only checked between ticks.
func (s *Session) Run(ctx context.Context) int {
	difficulty := s.cfg.Difficulty
	if difficulty == config.Unset {
		difficulty = s.SelectDifficulty(ctx)
	}
	interval := s.cfg.TickInterval(difficulty)

	log.Info().
		Int("width", s.game.Grid.Width).
		Int("height", s.game.Grid.Height).
		Str("difficulty", difficulty.String()).
		Dur("interval", interval).
		Msg("game started")

	for !s.game.Terminated() {
		if ctx.Err() != nil {
			log.Info().Err(ctx.Err()).Msg("interrupted")
			s.game.Quit()
			break
		}

		s.renderer.Draw(s.game.Snapshot())

		intent := input.IntentNone
		if key, ok := s.keys.ReadKey(s.cfg.KeyTimeout); ok {
			intent = input.Map(key)
		}
		if intent == input.IntentQuit {
			s.renderer.DrawNotice(s.game.Snapshot(), QuitNotice)
			s.Sleep(s.cfg.QuitPause)
			s.game.Quit()
			break
		}

		s.game.Tick(intent.Direction())
		s.Sleep(interval)
	}

	s.renderer.DrawFinal(s.game.Snapshot())
	s.Sleep(s.cfg.EndPause)
	return s.game.Score()
}
