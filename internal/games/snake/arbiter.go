package snake

import "github.com/vovakirdan/mango-snake/internal/core"

// RequestDirection queues d as the direction for the next tick.
//
// The request is silently dropped when d is not a unit vector, when the game
// is over, or when d reverses the direction of the last tick. The check is
// against the current direction rather than the pending one, so any number
// of requests between two ticks yields at most one turn and never a
// same-tick reversal into the neck.
func (g *Game) RequestDirection(d core.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if next, ok := arbitrate(g.phase, g.direction, d); ok {
		g.pending = next
	}
}

// arbitrate decides whether requested may become the pending direction.
func arbitrate(phase Phase, current, requested core.Direction) (core.Direction, bool) {
	if phase == PhaseGameOver || !requested.Valid() {
		return core.Direction{}, false
	}
	if requested == current.Opposite() {
		return core.Direction{}, false
	}
	return requested, true
}
