package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeLabels(t *testing.T) {
	s := New()
	play(t, s, 0, 5, 7)

	moves := s.Moves()
	require.Len(t, moves, 4)

	want := []string{
		"Go to game start",
		"Go to move #1: X to (1, 1)",
		"Go to move #2: O to (2, 3)",
		"Go to move #3: X to (3, 2)",
	}
	for i, m := range moves {
		assert.Equal(t, i, m.Step)
		assert.Equal(t, want[i], m.Label)
		assert.Equal(t, i == 3, m.Current)
	}
}

func TestDescriptorMarkFollowsParity(t *testing.T) {
	// The label mark comes from the step number, so it holds for any board.
	assert.Equal(t, X, DescriptorMark(1))
	assert.Equal(t, O, DescriptorMark(2))
	assert.Equal(t, X, DescriptorMark(9))

	snap := Snapshot{Selected: 4}
	snap.Board[4].Mark = O
	assert.Equal(t, "Go to move #1: X to (2, 2)", Describe(1, snap))
}

func TestMovesReversedKeepsSteps(t *testing.T) {
	s := New()
	play(t, s, 0, 1, 2)
	s.JumpTo(1)
	s.ToggleReverseDisplay()

	moves := s.Moves()
	require.Len(t, moves, 4)

	for i, m := range moves {
		assert.Equal(t, 3-i, m.Step)
		assert.Equal(t, m.Step == 1, m.Current)
	}
	assert.Equal(t, "Go to game start", moves[3].Label)

	s.JumpTo(moves[0].Step)
	assert.Equal(t, 3, s.Step())
}

func TestStatusFollowsViewedStep(t *testing.T) {
	s := New()
	play(t, s, drawLine...)
	require.Equal(t, "Draw!", s.Status())

	s.JumpTo(4)
	assert.Equal(t, "Next Player: X", s.Status())

	s.JumpTo(5)
	assert.Equal(t, "Next Player: O", s.Status())
}
