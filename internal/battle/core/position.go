package core

import (
	"fmt"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/common"
)

// Position is a cell on the battle board, row-major from the top-left.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewPosition creates a position with the given row and col values.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Key returns the canonical "row-col" cell key used in tick output.
// Renderers match highlighted cells against these strings.
func (p Position) Key() string {
	return fmt.Sprintf("%d-%d", p.Row, p.Col)
}

// ManhattanTo calculates the Manhattan distance to another position.
func (p Position) ManhattanTo(other Position) int {
	return common.Abs(p.Row-other.Row) + common.Abs(p.Col-other.Col)
}

// Equal checks if two positions refer to the same cell.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
