package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mango-snake/internal/core"
)

// ErrBoardFull is returned when there is no free cell left for food.
var ErrBoardFull = errors.New("snake: board is full")

// FoodSpawner picks a random unoccupied cell for the next food item.
type FoodSpawner struct {
	grid        core.Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewFoodSpawner creates a spawner over grid using rng.
func NewFoodSpawner(grid core.Grid, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{
		grid:        grid,
		rng:         rng,
		maxAttempts: grid.Size() * 4,
	}
}

// Spawn returns a cell chosen uniformly among the cells not in occupied.
//
// Random cells are drawn until a free one turns up, which is fast while the
// board is mostly empty. After maxAttempts misses the free cells are
// enumerated and one is picked directly, so the call always terminates.
func (s *FoodSpawner) Spawn(occupied []core.Cell) (core.Cell, error) {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if s.grid.InBounds(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= s.grid.Size() {
		return core.Cell{}, fmt.Errorf("spawn food on %dx%d grid with %d occupied cells: %w",
			s.grid.Cols, s.grid.Rows, len(taken), ErrBoardFull)
	}

	for range s.maxAttempts {
		c := core.Cell{X: s.rng.Intn(s.grid.Cols), Y: s.rng.Intn(s.grid.Rows)}
		if _, ok := taken[c]; !ok {
			return c, nil
		}
	}

	free := make([]core.Cell, 0, s.grid.Size()-len(taken))
	for i := range s.grid.Size() {
		c := s.grid.CellAt(i)
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	return free[s.rng.Intn(len(free))], nil
}
