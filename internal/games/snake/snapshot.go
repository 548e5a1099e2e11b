package snake

import (
	"time"

	"github.com/vovakirdan/mango-snake/internal/core"
)

// Snapshot is a copy of the game state, safe to read while the game goes on.
// The presentation layer renders from it every frame.
type Snapshot struct {
	Tick         uint64
	Body         []core.Cell // Head first
	Direction    core.Direction
	Pending      core.Direction
	Food         core.Cell
	Score        int
	HighScore    int
	TickInterval time.Duration
	Phase        Phase
}

// Head returns the head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Body) == 0 {
		return core.Cell{}
	}
	return s.Body[0]
}

// Occupied reports whether the body covers c.
func (s Snapshot) Occupied(c core.Cell) bool {
	for _, seg := range s.Body {
		if seg == c {
			return true
		}
	}
	return false
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		Tick:         g.tick,
		Body:         append([]core.Cell(nil), g.body...),
		Direction:    g.direction,
		Pending:      g.pending,
		Food:         g.food,
		Score:        g.score,
		HighScore:    g.highScore,
		TickInterval: g.interval,
		Phase:        g.phase,
	}
}
