package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawLine fills the board without ever completing a line.
var drawLine = []int{0, 1, 2, 4, 3, 5, 7, 6, 8}

func play(t *testing.T, s *State, cells ...int) {
	t.Helper()
	for _, c := range cells {
		require.Truef(t, s.ApplyMove(c), "move at %d rejected", c)
	}
}

func TestNewState(t *testing.T) {
	s := New()

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Step())
	assert.Equal(t, X, s.NextMark())
	assert.False(t, s.Reversed())
	assert.Equal(t, Board{}, s.Current().Board)
	assert.False(t, s.Current().HasSelection())
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, "Next Player: X", s.Status())
}

func TestApplyMoveAlternatesMarks(t *testing.T) {
	s := New()
	play(t, s, 4, 0)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Step())
	assert.Equal(t, X, s.Current().Board[4].Mark)
	assert.Equal(t, O, s.Current().Board[0].Mark)
	assert.Equal(t, 0, s.Current().Selected)
	assert.Equal(t, X, s.NextMark())
}

func TestApplyMoveSnapshotsDifferByOneCell(t *testing.T) {
	s := New()
	play(t, s, drawLine...)

	history := s.History()
	for k := 1; k < len(history); k++ {
		prev, cur := history[k-1].Board, history[k].Board
		changed := 0
		for i := range cur {
			if prev[i] != cur[i] {
				changed++
				assert.Equal(t, history[k].Selected, i)
				assert.True(t, prev[i].IsEmpty())
			}
		}
		assert.Equalf(t, 1, changed, "step %d", k)
	}
}

func TestApplyMoveOccupiedCellIsIgnored(t *testing.T) {
	s := New()
	play(t, s, 4)

	applied := s.ApplyMove(4)

	assert.False(t, applied)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Step())
	assert.Equal(t, X, s.Current().Board[4].Mark)
	assert.Equal(t, O, s.NextMark())
}

func TestApplyMoveOccupiedAfterJumpKeepsFuture(t *testing.T) {
	s := New()
	play(t, s, 0, 1, 2)
	s.JumpTo(1)

	assert.False(t, s.ApplyMove(0))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 1, s.Step())
}

func TestWinningMoveHighlightsLine(t *testing.T) {
	s := New()
	// X: 0, 2, 4, 6   O: 1, 3, 5
	play(t, s, 0, 1, 2, 3, 4, 5)
	_, won := s.Outcome()
	require.False(t, won, "no line is complete after six moves")

	play(t, s, 6)

	res, won := s.Outcome()
	require.True(t, won)
	assert.Equal(t, X, res.Mark)
	assert.Equal(t, Line{2, 4, 6}, res.Line)
	assert.Equal(t, PhaseWon, s.Phase())
	assert.Equal(t, "Winner: X", s.Status())

	board := s.Current().Board
	for i, c := range board {
		assert.Equalf(t, res.Contains(i), c.Highlighted, "cell %d", i)
	}
	for _, snap := range s.History()[:s.Len()-1] {
		for i, c := range snap.Board {
			assert.Falsef(t, c.Highlighted, "earlier snapshot cell %d", i)
		}
	}
}

func TestMovesAfterWinAreIgnored(t *testing.T) {
	s := New()
	play(t, s, 0, 1, 4, 2, 8)
	require.True(t, s.Finished())
	before := s.History()

	for i := 0; i < BoardSize; i++ {
		assert.False(t, s.ApplyMove(i))
	}

	assert.Equal(t, before, s.History())
	assert.Equal(t, 5, s.Step())
}

func TestDrawLine(t *testing.T) {
	s := New()
	play(t, s, drawLine...)

	assert.Equal(t, 10, s.Len())
	assert.Equal(t, PhaseDrawn, s.Phase())
	assert.True(t, s.Finished())
	assert.Equal(t, "Draw!", s.Status())

	for i := 0; i < BoardSize; i++ {
		assert.False(t, s.ApplyMove(i))
	}
	assert.Equal(t, 10, s.Len())
}

func TestJumpToStartThenMoveTruncates(t *testing.T) {
	s := New()
	play(t, s, 0, 1, 2, 3)

	s.JumpTo(0)

	assert.Equal(t, 5, s.Len(), "jumping keeps history")
	assert.Equal(t, Board{}, s.Current().Board)
	assert.Equal(t, X, s.NextMark())
	assert.Equal(t, "Next Player: X", s.Status())

	play(t, s, 8)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Step())
	assert.Equal(t, []int{8}, s.MoveList())
}

func TestSnapshotByStep(t *testing.T) {
	s := New()
	play(t, s, 4, 0)
	s.JumpTo(1)

	assert.Equal(t, s.Current(), s.Snapshot(1))
	assert.Equal(t, 0, s.Snapshot(2).Selected)
	assert.False(t, s.Snapshot(0).HasSelection())
}

func TestJumpToRedo(t *testing.T) {
	s := New()
	play(t, s, 0, 1, 2)

	s.JumpTo(1)
	assert.Equal(t, O, s.NextMark())
	assert.Equal(t, []int{0}, s.MoveList())

	s.JumpTo(3)
	assert.Equal(t, O, s.NextMark())
	assert.Equal(t, []int{0, 1, 2}, s.MoveList())
}

func TestJumpBackFromWinReopensView(t *testing.T) {
	s := New()
	play(t, s, 0, 1, 4, 2, 8)

	s.JumpTo(2)

	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.True(t, s.Finished(), "terminality of the newest snapshot is unchanged")

	play(t, s, 6)
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Finished())
}

func TestToggleReverseDisplay(t *testing.T) {
	s := New()
	play(t, s, 0, 4)
	before := s.History()
	original := s.Moves()

	s.ToggleReverseDisplay()
	assert.True(t, s.Reversed())
	assert.NotEqual(t, original, s.Moves())

	s.ToggleReverseDisplay()
	assert.False(t, s.Reversed())
	assert.Equal(t, original, s.Moves())
	assert.Equal(t, before, s.History())
	assert.Equal(t, 2, s.Step())
	assert.Equal(t, X, s.NextMark())
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(s *State)
		want error
	}{
		{"move below range", func(s *State) { s.ApplyMove(-1) }, ErrCellOutOfRange},
		{"move above range", func(s *State) { s.ApplyMove(9) }, ErrCellOutOfRange},
		{"jump below range", func(s *State) { s.JumpTo(-1) }, ErrStepOutOfRange},
		{"jump past history", func(s *State) { s.JumpTo(1) }, ErrStepOutOfRange},
		{"snapshot past history", func(s *State) { s.Snapshot(1) }, ErrStepOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, tc.want))
				assert.Equal(t, 1, s.Len())
			}()
			tc.fn(s)
		})
	}
}
