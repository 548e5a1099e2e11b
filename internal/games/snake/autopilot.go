package snake

import (
	"github.com/vovakirdan/mango-snake/internal/core"
)

// Autopilot picks a direction towards the food that does not kill the snake
// on the next tick. Among safe moves it prefers the one with more reachable
// space, then the one closer to the food. It plays well enough to exercise
// the engine for long runs, not to win.
type Autopilot struct {
	grid core.Grid
}

// NewAutopilot creates an autopilot for the given grid.
func NewAutopilot(grid core.Grid) *Autopilot {
	return &Autopilot{grid: grid}
}

// Next returns the direction to request for the next tick.
// When no move is safe the current direction is returned.
func (a *Autopilot) Next(s Snapshot) core.Direction {
	head := s.Head()
	blocked := make(map[core.Cell]bool, len(s.Body))
	for _, seg := range s.Body {
		blocked[seg] = true
	}

	best := s.Direction
	bestSpace, bestDist := -1, 0
	for _, d := range core.Directions {
		if d == s.Direction.Opposite() {
			continue
		}
		next := head.Add(d)
		if !a.grid.InBounds(next) || blocked[next] {
			continue
		}
		space := a.reachable(next, blocked, len(s.Body)+1)
		dist := core.Abs(next.X-s.Food.X) + core.Abs(next.Y-s.Food.Y)
		if space > bestSpace || (space == bestSpace && dist < bestDist) {
			best, bestSpace, bestDist = d, space, dist
		}
	}
	return best
}

// reachable counts free cells reachable from start, capped at limit.
func (a *Autopilot) reachable(start core.Cell, blocked map[core.Cell]bool, limit int) int {
	seen := map[core.Cell]bool{start: true}
	queue := []core.Cell{start}
	for len(queue) > 0 && len(seen) < limit {
		c := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			n := c.Add(d)
			if !a.grid.InBounds(n) || blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return min(len(seen), limit)
}
