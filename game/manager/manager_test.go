package manager

import (
	"testing"

	"snake-term/game/entity"
	"snake-term/game/types"

	"golang.org/x/exp/rand"
)

func TestCheckCollision(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 5}
	cm := NewCollisionManager(grid)

	snake := entity.NewSnake(types.Point{X: 5, Y: 3}, grid.Area())
	snake.Advance(types.Point{X: 6, Y: 3})
	snake.Grow()

	tests := []struct {
		name string
		pos  types.Point
		want CollisionType
	}{
		{"free cell", types.Point{X: 2, Y: 2}, NoCollision},
		{"left wall", types.Point{X: 0, Y: 3}, WallCollision},
		{"right wall", types.Point{X: 11, Y: 3}, WallCollision},
		{"top wall", types.Point{X: 3, Y: 0}, WallCollision},
		{"bottom wall", types.Point{X: 3, Y: 6}, WallCollision},
		{"body segment", types.Point{X: 5, Y: 3}, SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestSpawnNeverOnSnake(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 3}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)), cm)

	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, grid.Area())
	path := []types.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 2}}
	for _, p := range path {
		snake.Advance(p)
		snake.Grow()
	}

	for i := 0; i < 500; i++ {
		food, ok := fm.Spawn(snake, snake.Head())
		if !ok {
			t.Fatal("Spawn reported a full board with free cells left")
		}
		if !grid.Contains(food) {
			t.Fatalf("food %v outside grid", food)
		}
		if snake.Occupies(food) {
			t.Fatalf("food %v spawned on snake", food)
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), cm)

	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, grid.Area())
	snake.Advance(types.Point{X: 2, Y: 1})
	snake.Grow()

	if _, ok := fm.Spawn(snake, snake.Head()); ok {
		t.Error("Spawn should fail when the snake covers every cell")
	}
}

func TestSpawnExcludesUncommittedHead(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(3)), cm)

	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, grid.Area())
	for i := 0; i < 50; i++ {
		food, ok := fm.Spawn(snake, types.Point{X: 2, Y: 1})
		if ok {
			t.Fatalf("expected no free cell, got %v", food)
		}
	}
}

func TestStateManagerTerminatesOnce(t *testing.T) {
	sm := NewStateManager()
	if sm.Status() != Running {
		t.Fatalf("initial status = %v, want running", sm.Status())
	}
	sm.AddPoint()
	sm.Terminate(HitWall)
	sm.Terminate(Quit)

	if !sm.Terminated() {
		t.Error("expected terminated")
	}
	if sm.Reason() != HitWall {
		t.Errorf("reason = %v, want wall", sm.Reason())
	}
	if sm.Score() != 1 {
		t.Errorf("score = %d, want 1", sm.Score())
	}
}

func TestReasonFor(t *testing.T) {
	if ReasonFor(WallCollision) != HitWall || ReasonFor(SelfCollision) != HitSelf || ReasonFor(NoCollision) != NotEnded {
		t.Error("ReasonFor mapping mismatch")
	}
}
