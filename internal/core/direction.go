package core

import "fmt"

// Direction is a unit movement vector on the grid.
// The zero value is not a valid direction.
type Direction struct {
	DX, DY int
}

// The four valid directions. Y grows downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists the valid directions in a stable order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse vector.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of the four unit vectors.
func (d Direction) Valid() bool {
	return Abs(d.DX)+Abs(d.DY) == 1
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection converts a direction name into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Direction{}, fmt.Errorf("core: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler so directions appear by name in config files.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("core: invalid direction %v", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
