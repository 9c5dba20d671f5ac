// Package ai steers the snake on its own for demo play.
package ai

import (
	"context"
	"time"

	"golang.org/x/exp/rand"

	"snake-term/game"
	"snake-term/game/types"
	"snake-term/input"
)

// State is what the autopilot sees from the head.
type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // Danger in each direction, ordered like types.Directions
}

// NewState reads the surroundings of the head from a snapshot.
func NewState(s game.Snapshot) State {
	head := s.Head
	st := State{
		RelativeFoodDir: [2]int{sign(s.Food.X - head.X), sign(s.Food.Y - head.Y)},
		FoodDistance:    abs(s.Food.X-head.X) + abs(s.Food.Y-head.Y),
	}
	for i, d := range types.Directions {
		st.DangerDirs[i] = isDanger(s, head.Add(d.ToPoint()))
	}
	return st
}

// isDanger reports whether moving the head to p would end the game.
// The last segment moves away during the same tick unless food is eaten.
func isDanger(s game.Snapshot, p types.Point) bool {
	if !s.Grid.Contains(p) {
		return true
	}
	body := s.Body
	if len(body) > 0 && p != s.Food {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}

// Autopilot is a key source that picks the direction itself.
// The wrapped source still handles the startup prompt and the quit key.
type Autopilot struct {
	snapshot func() game.Snapshot
	keys     game.KeySource
	rng      *rand.Rand
}

func NewAutopilot(snapshot func() game.Snapshot, keys game.KeySource, rng *rand.Rand) *Autopilot {
	return &Autopilot{
		snapshot: snapshot,
		keys:     keys,
		rng:      rng,
	}
}

// ReadKey passes a quit through and otherwise answers with the chosen arrow key.
func (a *Autopilot) ReadKey(timeout time.Duration) (input.Key, bool) {
	if key, ok := a.keys.ReadKey(timeout); ok && input.Map(key) == input.IntentQuit {
		return key, true
	}
	dir := a.Choose(a.snapshot())
	if dir == types.None {
		return input.Key{}, false
	}
	return input.KeyFor(dir), true
}

func (a *Autopilot) WaitKey(ctx context.Context) (input.Key, bool) {
	return a.keys.WaitKey(ctx)
}

// Choose returns the safe direction that gets closest to the food, breaking ties at random.
// It never picks the reverse of the current heading. With no safe move it returns None.
func (a *Autopilot) Choose(s game.Snapshot) types.Direction {
	st := NewState(s)

	best := make([]types.Direction, 0, 4)
	bestDist := -1
	for i, d := range types.Directions {
		if st.DangerDirs[i] {
			continue
		}
		if len(s.Body) > 0 && d == s.Heading.Opposite() {
			continue
		}
		next := s.Head.Add(d.ToPoint())
		dist := abs(s.Food.X-next.X) + abs(s.Food.Y-next.Y)
		switch {
		case bestDist < 0 || dist < bestDist:
			bestDist = dist
			best = append(best[:0], d)
		case dist == bestDist:
			best = append(best, d)
		}
	}

	if len(best) == 0 {
		return types.None
	}
	return best[a.rng.Intn(len(best))]
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
