package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardOf(marks map[int]Mark) Board {
	var b Board
	for i, m := range marks {
		b[i].Mark = m
	}
	return b
}

func TestEvaluateEveryLine(t *testing.T) {
	for _, mark := range []Mark{X, O} {
		for _, line := range Lines {
			t.Run(mark.String()+" "+lineName(line), func(t *testing.T) {
				b := boardOf(map[int]Mark{line[0]: mark, line[1]: mark, line[2]: mark})

				res, won := Evaluate(b)

				require.True(t, won)
				assert.Equal(t, mark, res.Mark)
				assert.Equal(t, line, res.Line)
			})
		}
	}
}

func TestEvaluateNoWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{"empty board", Board{}},
		{"two in a row", boardOf(map[int]Mark{0: X, 1: X})},
		{"mixed line", boardOf(map[int]Mark{0: X, 1: O, 2: X})},
		{
			"full drawn board",
			boardOf(map[int]Mark{0: X, 1: O, 2: X, 3: X, 4: O, 5: O, 6: O, 7: X, 8: X}),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, won := Evaluate(tc.board)
			assert.False(t, won)
		})
	}
}

func TestEvaluateFirstLineWins(t *testing.T) {
	// X holds both 0-1-2 and 0-3-6.
	b := boardOf(map[int]Mark{0: X, 1: X, 2: X, 3: X, 6: X})

	res, won := Evaluate(b)

	require.True(t, won)
	assert.Equal(t, Line{0, 1, 2}, res.Line)
}

func TestEvaluateDiagonalOrder(t *testing.T) {
	// Both diagonals share the centre; 0-4-8 is scanned first.
	b := boardOf(map[int]Mark{0: O, 2: O, 4: O, 6: O, 8: O})

	res, won := Evaluate(b)

	require.True(t, won)
	assert.Equal(t, Line{0, 4, 8}, res.Line)
	assert.Equal(t, O, res.Mark)
}

func TestEvaluateIgnoresHighlight(t *testing.T) {
	b := boardOf(map[int]Mark{0: X, 1: X})
	b[0].Highlighted = true
	b[2] = Cell{Mark: X}

	res, won := Evaluate(b)

	require.True(t, won)
	assert.Equal(t, X, res.Mark)

	var highlightOnly Board
	highlightOnly[0].Highlighted = true
	highlightOnly[1].Highlighted = true
	highlightOnly[2].Highlighted = true
	_, won = Evaluate(highlightOnly)
	assert.False(t, won)
}

func TestResultContains(t *testing.T) {
	res := Result{Mark: X, Line: Line{2, 4, 6}}

	assert.True(t, res.Contains(4))
	assert.False(t, res.Contains(0))
}

func lineName(l Line) string {
	b := []byte{'0' + byte(l[0]), '-', '0' + byte(l[1]), '-', '0' + byte(l[2])}
	return string(b)
}
