package game

import "fmt"

// Position is a cell coordinate: X is the column, Y the row.
type Position struct {
	X, Y int
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move relocates the piece on From to the neighbouring cell To.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// offsets are the eight king-move directions in generation order. The order
// decides tie-breaking in search, so it must not change.
var offsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func neighbour(p Position, offset Position) Position {
	return Position{X: p.X + offset.X, Y: p.Y + offset.Y}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
