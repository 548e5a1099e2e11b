package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to a terminal color.
type Color uint8

// Colors used by the board, HUD, and overlays.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightYellow
)
