package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetGlyph(x, y).Rune
}

func fill(s *Screen, r rune) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.Set(x, y, r)
		}
	}
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if runeAt(s, x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", runeAt(s, x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	if g := s.GetGlyph(5, 5); g.Rune != 'X' || g.Color != ColorGreen {
		t.Errorf("GetGlyph(5, 5) = %+v, expected green 'X'", g)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds GetGlyph should return space")
	}
}

func TestScreenSetWide(t *testing.T) {
	s := NewScreen(6, 1)
	fill(s, '.')
	s.SetWide(2, 0, '🥭', ColorYellow)

	if got := s.Row(0); got != "..🥭.." {
		t.Errorf("Row(0) = %q, expected %q", got, "..🥭..")
	}

	// Does not fit at the last column
	s.SetWide(5, 0, '🐍', ColorGreen)
	if runeAt(s, 5, 0) != '.' {
		t.Error("SetWide should not draw a half glyph at the right edge")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	fill(s, 'X')
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if runeAt(s, x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorDefault)

	for i, ch := range "Hello" {
		if runeAt(s, 2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, runeAt(s, 2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello", ColorDefault) // Only "He" should fit
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5), ColorGray)

	if runeAt(s, 0, 0) != '┌' || runeAt(s, 9, 0) != '┐' || runeAt(s, 0, 4) != '└' || runeAt(s, 9, 4) != '┘' {
		t.Error("DrawBox corners not drawn")
	}
	if runeAt(s, 5, 0) != '─' || runeAt(s, 0, 2) != '│' {
		t.Error("DrawBox edges not drawn")
	}
	if runeAt(s, 5, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')
	s.Resize(4, 3)

	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if runeAt(s, 1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}
