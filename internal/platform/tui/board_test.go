package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mango-snake/internal/core"
	"github.com/vovakirdan/mango-snake/internal/games/snake"
)

func testSnapshot(phase snake.Phase) snake.Snapshot {
	return snake.Snapshot{
		Body:         []core.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Direction:    core.Right,
		Pending:      core.Right,
		Food:         core.Cell{X: 4, Y: 2},
		Score:        3,
		HighScore:    7,
		TickInterval: 138 * time.Millisecond,
		Phase:        phase,
	}
}

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(core.NewGrid(24, 18))
	if w != 50 || h != 21 {
		t.Errorf("BoardSize(24x18) = %dx%d, want 50x21", w, h)
	}
}

func TestDrawBoard(t *testing.T) {
	grid := core.NewGrid(24, 18)
	w, h := BoardSize(grid)
	s := core.NewScreen(w, h)
	look := NewLook("🐸", "🥭")

	if !DrawBoard(s, testSnapshot(snake.PhaseRunning), grid, look) {
		t.Fatal("DrawBoard() = false on an exactly sized screen")
	}

	// HUD
	if !strings.Contains(s.Row(0), "Score: 3") {
		t.Errorf("HUD row %q missing score", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "Record: 7") {
		t.Errorf("HUD row %q missing record", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "138ms") {
		t.Errorf("HUD row %q missing speed", s.Row(0))
	}

	// Box corners
	if s.GetGlyph(0, 1).Rune != '┌' || s.GetGlyph(w-1, h-1).Rune != '┘' {
		t.Errorf("box corners not drawn: %q / %q", s.GetGlyph(0, 1).Rune, s.GetGlyph(w-1, h-1).Rune)
	}

	// Cell (x, y) is at column 1+2x, row 2+y
	if g := s.GetGlyph(1+2*2, 2+1); g.Rune != '🐸' {
		t.Errorf("head glyph = %q, want 🐸", g.Rune)
	}
	if g := s.GetGlyph(1+2*1, 2+1); g.Rune != '🐸' {
		t.Errorf("body glyph = %q, want 🐸", g.Rune)
	}
	if g := s.GetGlyph(1+2*2+1, 2+1); g.Rune != 0 {
		t.Errorf("wide glyph continuation = %q, want zero rune", g.Rune)
	}
	if g := s.GetGlyph(1+2*4, 2+2); g.Rune != '🥭' {
		t.Errorf("food glyph = %q, want 🥭", g.Rune)
	}
	if g := s.GetGlyph(1, 2); g.Rune != '·' {
		t.Errorf("empty cell = %q, want ·", g.Rune)
	}
}

func TestDrawBoardOverlays(t *testing.T) {
	grid := core.NewGrid(24, 18)
	w, h := BoardSize(grid)
	look := NewLook("🐍", "🥭")

	tests := []struct {
		phase snake.Phase
		want  string
	}{
		{snake.PhasePaused, "Paused"},
		{snake.PhaseGameOver, "Game Over - score 3"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			s := core.NewScreen(w, h)
			DrawBoard(s, testSnapshot(tt.phase), grid, look)
			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("screen does not contain %q:\n%s", tt.want, s.String())
			}
		})
	}

	s := core.NewScreen(w, h)
	DrawBoard(s, testSnapshot(snake.PhaseRunning), grid, look)
	if strings.Contains(s.String(), "Paused") || strings.Contains(s.String(), "Game Over") {
		t.Error("running board shows an overlay")
	}
}

func TestDrawBoardTooSmall(t *testing.T) {
	grid := core.NewGrid(24, 18)
	s := core.NewScreen(40, 10)

	if DrawBoard(s, testSnapshot(snake.PhaseRunning), grid, NewLook("🐍", "🥭")) {
		t.Fatal("DrawBoard() = true on a too small screen")
	}
	if !strings.Contains(s.String(), "need 50x21") {
		t.Errorf("missing size hint:\n%s", s.String())
	}
}

func TestDrawBoardFlash(t *testing.T) {
	grid := core.NewGrid(24, 18)
	w, h := BoardSize(grid)
	s := core.NewScreen(w, h)
	look := NewLook("🐍", "🥭")

	DrawBoard(s, testSnapshot(snake.PhaseRunning), grid, look)
	normal := s.GetGlyph(3, 0).Color

	look.Flash = 2
	DrawBoard(s, testSnapshot(snake.PhaseRunning), grid, look)
	flashed := s.GetGlyph(3, 0).Color

	if normal == flashed {
		t.Errorf("score color did not change while flashing (%v)", normal)
	}
}

func TestRenderScreenSkipsContinuation(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetWide(0, 0, '🥭', core.ColorDefault)
	s.SetColored(2, 0, 'x', core.ColorDefault)

	got := RenderScreen(s)
	if !strings.Contains(got, "🥭x") {
		t.Errorf("RenderScreen() = %q, want the emoji followed directly by x", got)
	}
}
