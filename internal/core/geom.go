// Package core provides the fundamental types shared by the engine and the
// platforms: grid positions, directions, input events and the frame buffer.
// It has no external dependencies so that it builds for the device as well
// as the desktop simulator.
package core

// Grid dimensions. The display is always an 8-row by 8-column matrix.
const (
	Rows  = 8
	Cols  = 8
	Cells = Rows * Cols
)

// Position is a cell on the grid, addressed by row (top to bottom) and
// column (left to right).
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether p lies inside [0,Rows) x [0,Cols).
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Add returns the neighbouring position one step in direction d.
// The result may be out of bounds.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Wrap folds an out-of-bounds position back onto the grid (torus).
func (p Position) Wrap() Position {
	return Position{Row: mod(p.Row, Rows), Col: mod(p.Col, Cols)}
}

// Index returns the row-major cell index of p.
func (p Position) Index() int {
	return p.Row*Cols + p.Col
}

// PositionAt is the inverse of Index.
func PositionAt(index int) Position {
	return Position{Row: index / Cols, Col: index % Cols}
}

// Adjacent reports whether a and b differ by exactly one unit in exactly
// one axis. With wrap set, opposite edges count as adjacent.
func Adjacent(a, b Position, wrap bool) bool {
	dr := Abs(a.Row - b.Row)
	dc := Abs(a.Col - b.Col)
	if wrap {
		if dr == Rows-1 {
			dr = 1
		}
		if dc == Cols-1 {
			dc = 1
		}
	}
	return dr+dc == 1
}

// Direction is one of the four movement directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the (row, col) unit vector for d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

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
		return "unknown"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
