package manager

import (
	"github.com/rs/zerolog/log"
)

// Status is the lifecycle state of a game.
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// EndReason records why a game reached Terminated.
type EndReason int

const (
	NotEnded EndReason = iota
	HitWall
	HitSelf
	Quit
	BoardFull
)

func (r EndReason) String() string {
	switch r {
	case HitWall:
		return "wall"
	case HitSelf:
		return "self"
	case Quit:
		return "quit"
	case BoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// ReasonFor maps a collision to the end reason it causes.
func ReasonFor(c CollisionType) EndReason {
	switch c {
	case WallCollision:
		return HitWall
	case SelfCollision:
		return HitSelf
	default:
		return NotEnded
	}
}

// StateManager owns the Running/Terminated machine, the score and the tick counter.
type StateManager struct {
	status Status
	reason EndReason
	score  int
	ticks  int
}

func NewStateManager() *StateManager {
	return &StateManager{
		status: Running,
		reason: NotEnded,
	}
}

func (sm *StateManager) Status() Status {
	return sm.status
}

func (sm *StateManager) Reason() EndReason {
	return sm.reason
}

func (sm *StateManager) Terminated() bool {
	return sm.status == Terminated
}

// Terminate moves to Terminated. Only the first call has any effect.
func (sm *StateManager) Terminate(reason EndReason) {
	if sm.Terminated() {
		return
	}
	sm.status = Terminated
	sm.reason = reason
	log.Info().
		Str("reason", reason.String()).
		Int("score", sm.score).
		Int("ticks", sm.ticks).
		Msg("game terminated")
}

// AddPoint increments the score by one.
func (sm *StateManager) AddPoint() {
	sm.score++
	log.Debug().Int("score", sm.score).Int("tick", sm.ticks).Msg("food eaten")
}

func (sm *StateManager) Score() int {
	return sm.score
}

// CountTick records that one tick was applied.
func (sm *StateManager) CountTick() {
	sm.ticks++
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}
