package snake

import (
	"testing"

	"github.com/vovakirdan/mango-snake/internal/core"
)

func TestAutopilotAvoidsWall(t *testing.T) {
	g := newTestGame(t)
	pilot := NewAutopilot(g.Grid())

	s := g.Snapshot()
	s.Body = cells([2]int{23, 5}, [2]int{22, 5}, [2]int{21, 5})
	s.Direction = core.Right
	s.Food = core.Cell{X: 23, Y: 0}

	if d := pilot.Next(s); d != core.Up {
		t.Errorf("Next() = %v, expected up towards the food", d)
	}
}

func TestAutopilotAvoidsOwnBody(t *testing.T) {
	g := newTestGame(t)
	pilot := NewAutopilot(g.Grid())

	s := g.Snapshot()
	// Heading left with the body wrapped below and above-right.
	s.Body = cells([2]int{5, 5}, [2]int{6, 5}, [2]int{6, 6}, [2]int{5, 6}, [2]int{4, 6})
	s.Direction = core.Left
	s.Food = core.Cell{X: 5, Y: 10}

	d := pilot.Next(s)
	if d == core.Down || d == core.Right {
		t.Errorf("Next() = %v steps into the body", d)
	}
}

func TestAutopilotEatsFood(t *testing.T) {
	g := newTestGame(t, WithSeed(2024))
	pilot := NewAutopilot(g.Grid())

	for range 2000 {
		if g.Phase() != PhaseRunning {
			break
		}
		g.RequestDirection(pilot.Next(g.Snapshot()))
		if _, err := g.Tick(); err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
	}
	if g.Score() < 5 {
		t.Errorf("autopilot only scored %d", g.Score())
	}
}
