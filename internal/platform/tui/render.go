package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

// Board grid geometry: each cell is three characters wide between rules.
const (
	cellWidth   = 4
	cellHeight  = 2
	boardWidth  = game.Side*cellWidth + 1
	boardHeight = game.Side*cellHeight + 1
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// cellOrigin returns the screen position of the mark for board column col and row.
func cellOrigin(col, row int) (x, y int) {
	return col*cellWidth + cellWidth/2, row*cellHeight + cellHeight/2
}

// DrawBoard draws the grid and marks of board into dst. When showCursor is
// set, the cell at (cursorCol, cursorRow) is bracketed.
func DrawBoard(dst *core.Screen, board game.Board, cursorCol, cursorRow int, showCursor bool) {
	dst.DrawBox(core.NewRect(0, 0, boardWidth, boardHeight), core.ColorGrid)

	for i := 1; i < game.Side; i++ {
		x := i * cellWidth
		y := i * cellHeight
		dst.DrawVLine(x, 1, boardHeight-2, '│', core.ColorGrid)
		dst.DrawHLine(1, y, boardWidth-2, '─', core.ColorGrid)
		dst.SetColored(x, 0, '┬', core.ColorGrid)
		dst.SetColored(x, boardHeight-1, '┴', core.ColorGrid)
		dst.SetColored(0, y, '├', core.ColorGrid)
		dst.SetColored(boardWidth-1, y, '┤', core.ColorGrid)
	}
	for i := 1; i < game.Side; i++ {
		for j := 1; j < game.Side; j++ {
			dst.SetColored(i*cellWidth, j*cellHeight, '┼', core.ColorGrid)
		}
	}

	for row := 0; row < game.Side; row++ {
		for col := 0; col < game.Side; col++ {
			x, y := cellOrigin(col, row)
			cell := board[game.Index(col, row)]
			if !cell.IsEmpty() {
				dst.SetColored(x, y, []rune(cell.Mark.String())[0], markColor(cell))
			}
			if showCursor && col == cursorCol && row == cursorRow {
				dst.SetColored(x-1, y, '[', core.ColorCursor)
				dst.SetColored(x+1, y, ']', core.ColorCursor)
			}
		}
	}
}

// DrawHints writes the digit key of every empty cell in its center, dimmed.
func DrawHints(dst *core.Screen, board game.Board) {
	for n := 1; n <= game.BoardSize; n++ {
		cell := cellForDigit(n)
		if !board[cell].IsEmpty() {
			continue
		}
		x, y := cellOrigin(game.Coords(cell))
		dst.DrawText(x, y, strconv.Itoa(n), core.ColorDim)
	}
}

func markColor(c game.Cell) core.Color {
	switch {
	case c.Highlighted:
		return core.ColorWin
	case c.Mark == game.X:
		return core.ColorMarkX
	default:
		return core.ColorMarkO
	}
}

// MoveLines formats the move list. Numbers follow play order, so a reversed
// list counts down. selected is a display position, or -1 for none.
// The viewed step is starred so it stays visible without styling.
func MoveLines(moves []game.MoveDescriptor, selected int, theme Theme) []string {
	lines := make([]string, len(moves))
	for i, m := range moves {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		marker := " "
		label := m.Label
		if m.Current {
			marker = "*"
			label = theme.Current.Render(label)
		}
		lines[i] = fmt.Sprintf("%s%s%2d. %s", prefix, marker, m.Step+1, label)
	}
	return lines
}

// ReverseToggle renders the reverse-order checkbox line.
func ReverseToggle(reversed bool) string {
	if reversed {
		return "[x] reverse move order"
	}
	return "[ ] reverse move order"
}

// RenderGame renders the board, status and move list of s as plain text.
// Used outside the interactive session, e.g. for replays.
func RenderGame(s *game.State, theme Theme) string {
	screen := core.NewScreen(boardWidth, boardHeight)
	DrawBoard(screen, s.Current().Board, 0, 0, false)

	var b strings.Builder
	b.WriteString(RenderScreen(screen, theme))
	b.WriteString("\n\n")
	b.WriteString(theme.Status.Render(s.Status()))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(MoveLines(s.Moves(), -1, theme), "\n"))
	b.WriteString("\n\n")
	b.WriteString(ReverseToggle(s.Reversed()))
	b.WriteString("\n")
	return b.String()
}
