package manager

import (
	"snake-term/game/entity"
	"snake-term/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places food on free cells of the grid.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	free         []types.Point
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		free:         make([]types.Point, 0, grid.Area()),
	}
}

// Spawn returns a uniformly random cell that is not on head or any body segment.
// It reports false when no such cell exists.
func (fm *FoodManager) Spawn(snake *entity.Snake, head types.Point) (types.Point, bool) {
	// Rejection sampling is cheap while the board is mostly empty.
	for try := 0; try < 32; try++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width) + 1,
			Y: fm.rng.Intn(fm.grid.Height) + 1,
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, head, snake) {
			return food, true
		}
	}

	fm.free = fm.free[:0]
	for y := 1; y <= fm.grid.Height; y++ {
		for x := 1; x <= fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, head, snake) {
				fm.free = append(fm.free, p)
			}
		}
	}
	if len(fm.free) == 0 {
		return types.Point{}, false
	}
	return fm.free[fm.rng.Intn(len(fm.free))], true
}
