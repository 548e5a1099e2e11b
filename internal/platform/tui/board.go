package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/mango-snake/internal/core"
	"github.com/vovakirdan/mango-snake/internal/games/snake"
)

// Board layout constants
const (
	cellWidth = 2 // Emoji take two terminal columns
	hudHeight = 1
)

// Look holds what the board is drawn with.
type Look struct {
	Character rune // Every body segment
	Food      rune
	Flash     int // Remaining HUD flash frames after eating
}

// NewLook builds a Look from the configured glyph strings.
func NewLook(character, food string) Look {
	c, _ := utf8.DecodeRuneInString(character)
	f, _ := utf8.DecodeRuneInString(food)
	return Look{Character: c, Food: f}
}

// BoardSize returns the screen size needed to draw a grid with its HUD.
func BoardSize(g core.Grid) (w, h int) {
	return g.Cols*cellWidth + 2, g.Rows + 2 + hudHeight
}

// DrawBoard renders the HUD, the board, and any overlay into s.
// Returns false if the screen is too small, in which case a hint is drawn
// instead.
func DrawBoard(s *core.Screen, snap snake.Snapshot, g core.Grid, look Look) bool {
	s.Clear()

	w, h := BoardSize(g)
	if s.Width() < w || s.Height() < h {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", w, h), core.ColorYellow)
		return false
	}

	area := core.NewRect(0, 0, s.Width(), s.Height()).Centered(w, h)
	drawHUD(s, area.X, area.Y, area.W, snap, look)

	box := core.NewRect(area.X, area.Y+hudHeight, w, h-hudHeight)
	s.DrawBox(box, core.ColorGray)

	originX, originY := box.X+1, box.Y+1
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			s.SetColored(originX+x*cellWidth, originY+y, '·', core.ColorGray)
		}
	}

	s.SetWide(originX+snap.Food.X*cellWidth, originY+snap.Food.Y, look.Food, core.ColorDefault)
	for _, seg := range snap.Body {
		s.SetWide(originX+seg.X*cellWidth, originY+seg.Y, look.Character, core.ColorDefault)
	}

	switch snap.Phase {
	case snake.PhasePaused:
		drawOverlay(s, box, "Paused - press SPACE to continue", core.ColorBrightYellow)
	case snake.PhaseGameOver:
		drawOverlay(s, box, fmt.Sprintf("Game Over - score %d. Press R to restart", snap.Score), core.ColorBrightRed)
	}
	return true
}

// drawHUD draws score, record, and speed on one line.
func drawHUD(s *core.Screen, x, y, width int, snap snake.Snapshot, look Look) {
	color := core.ColorWhite
	if look.Flash > 0 {
		color = core.ColorBrightYellow
	}

	s.SetWide(x, y, look.Food, core.ColorDefault)
	score := fmt.Sprintf("Score: %d", snap.Score)
	s.DrawText(x+3, y, score, color)

	record := fmt.Sprintf("Record: %d", snap.HighScore)
	speed := fmt.Sprintf("%dms", snap.TickInterval.Milliseconds())
	free := width - 3 - len(score) - 2
	switch {
	case free >= len(record)+2+len(speed):
		s.DrawText(x+width-len(record)-2-len(speed), y, record, core.ColorCyan)
		s.DrawText(x+width-len(speed), y, speed, core.ColorGray)
	case free >= len(record):
		s.DrawText(x+width-len(record), y, record, core.ColorCyan)
	}
}

// drawOverlay blanks a band across the middle of the board and centers
// text in it. Whole rows are cleared so no emoji is left half covered.
func drawOverlay(s *core.Screen, box core.Rect, text string, c core.Color) {
	mid := box.Y + box.H/2
	for y := mid - 1; y <= mid+1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			s.Set(x, y, ' ')
		}
	}

	inner := box.W - 2
	if n := utf8.RuneCountInString(text); n > inner {
		text = string([]rune(text)[:inner])
	}
	x := box.X + 1 + (inner-utf8.RuneCountInString(text))/2
	s.DrawText(x, mid, text, c)
}
