package core

import "fmt"

// Cell is a position on the game grid. Column is X, row is Y.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// String returns "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the fixed coordinate space the game is played on.
type Grid struct {
	Cols int
	Rows int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(cols, rows int) Grid {
	return Grid{Cols: cols, Rows: rows}
}

// InBounds reports whether c lies within [0, Cols) × [0, Rows).
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}

// CellAt maps a linear index in [0, Size()) to a cell, row-major.
func (g Grid) CellAt(i int) Cell {
	return Cell{X: i % g.Cols, Y: i / g.Cols}
}
