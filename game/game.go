package game

import (
	"snake-term/game/entity"
	"snake-term/game/manager"
	"snake-term/game/types"

	"golang.org/x/exp/rand"
)

// Snapshot is a read-only copy of the game handed to renderers and the autopilot.
type Snapshot struct {
	Grid       types.Grid
	Head       types.Point
	Body       []types.Point
	Heading    types.Direction
	Food       types.Point
	Score      int
	Ticks      int
	Terminated bool
	Reason     manager.EndReason
}

// Game is the whole mutable state of one round. It is owned by a single loop.
type Game struct {
	Grid types.Grid

	snake        *entity.Snake
	food         types.Point
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame creates a running game with a zero-length snake at the grid center and one food.
func NewGame(grid types.Grid, rng *rand.Rand) *Game {
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Grid:         grid,
		snake:        entity.NewSnake(grid.Center(), grid.Area()),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}

	food, ok := g.foodMgr.Spawn(g.snake, g.snake.Head())
	if !ok {
		g.stateMgr.Terminate(manager.BoardFull)
	}
	g.food = food
	return g
}

// Tick applies one step of the simulation with the given input direction.
// A terminated game is left untouched.
func (g *Game) Tick(dir types.Direction) {
	if g.stateMgr.Terminated() {
		return
	}
	g.stateMgr.CountTick()

	g.snake.SetHeading(dir)
	heading := g.snake.Heading()
	if heading == types.None {
		return
	}

	newHead := g.snake.Head().Add(heading.ToPoint())
	g.snake.Advance(newHead)

	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != manager.NoCollision {
		g.stateMgr.Terminate(manager.ReasonFor(c))
		return
	}

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.stateMgr.AddPoint()
		g.snake.Grow()
		food, ok := g.foodMgr.Spawn(g.snake, newHead)
		if !ok {
			g.stateMgr.Terminate(manager.BoardFull)
			return
		}
		g.food = food
	}
}

// Quit ends the game on behalf of the player.
func (g *Game) Quit() {
	g.stateMgr.Terminate(manager.Quit)
}

func (g *Game) Terminated() bool {
	return g.stateMgr.Terminated()
}

func (g *Game) Reason() manager.EndReason {
	return g.stateMgr.Reason()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// Snapshot copies the state needed to draw a frame.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:       g.Grid,
		Head:       g.snake.Head(),
		Body:       g.snake.Body(),
		Heading:    g.snake.Heading(),
		Food:       g.food,
		Score:      g.stateMgr.Score(),
		Ticks:      g.stateMgr.Ticks(),
		Terminated: g.stateMgr.Terminated(),
		Reason:     g.stateMgr.Reason(),
	}
}
