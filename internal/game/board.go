// Package game implements tic-tac-toe rules: the board model, win detection
// and the move history state machine. It has no UI or storage dependencies;
// the platform layer drives it one event at a time.
package game

import "strings"

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Side is the length of one board edge.
const Side = 3

// Mark is the symbol occupying a cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O", or an empty string for Empty.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Cell holds a logical mark plus the winning-line highlight.
// Highlighted is presentation only and never affects Evaluate.
type Cell struct {
	Mark        Mark
	Highlighted bool
}

// IsEmpty reports whether no mark has been placed in the cell.
func (c Cell) IsEmpty() bool {
	return c.Mark == Empty
}

// Board is the 3x3 grid stored column-major: index = 3*col + row.
type Board [BoardSize]Cell

// Index returns the board index for a zero-based column and row.
func Index(col, row int) int {
	return Side*col + row
}

// Coords returns the zero-based column and row for a board index.
func Coords(i int) (col, row int) {
	return i / Side, i % Side
}

// InRange reports whether i is a valid board index.
func InRange(i int) bool {
	return i >= 0 && i < BoardSize
}

// Full reports whether every cell holds a mark.
func (b Board) Full() bool {
	return b.Count() == BoardSize
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for _, c := range b {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// String renders the board as three text rows, '.' for empty cells.
// Row y lists cells 3*x+y for x = 0..2.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Side; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Side; col++ {
			m := b[Index(col, row)].Mark
			if m == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}
