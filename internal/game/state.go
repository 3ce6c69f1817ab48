package game

import "fmt"

// NoSelection marks the initial snapshot, which no move produced.
const NoSelection = -1

// Phase describes whether a snapshot still accepts moves.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseDrawn      Phase = "drawn"
)

// Snapshot is the board after one move plus the cell that move filled.
type Snapshot struct {
	Board    Board
	Selected int // NoSelection for the opening snapshot
}

// HasSelection reports whether a move produced this snapshot.
func (s Snapshot) HasSelection() bool {
	return s.Selected != NoSelection
}

// Phase classifies the snapshot's board.
func (s Snapshot) Phase() Phase {
	if _, won := Evaluate(s.Board); won {
		return PhaseWon
	}
	if s.Board.Full() {
		return PhaseDrawn
	}
	return PhaseInProgress
}

// State owns the move history of one game session. The zero value is not
// usable; call New.
//
// History only grows through ApplyMove. JumpTo changes which snapshot is
// viewed and leaves later snapshots in place until the next accepted move
// discards them.
type State struct {
	history  []Snapshot
	step     int
	reversed bool
}

// New returns a game holding only the empty opening snapshot.
func New() *State {
	return &State{
		history: []Snapshot{{Selected: NoSelection}},
	}
}

// ApplyMove places the next mark at cell i on the viewed snapshot.
// A move on an occupied cell, or on a board that is already won, is ignored
// and reported as false without touching history. Panics if i is not a board
// index.
func (s *State) ApplyMove(i int) bool {
	if !InRange(i) {
		panic(fmt.Errorf("%w: %d", ErrCellOutOfRange, i))
	}

	board := s.Current().Board
	if _, won := Evaluate(board); won || !board[i].IsEmpty() {
		return false
	}

	board[i].Mark = s.NextMark()
	if res, won := Evaluate(board); won {
		for idx := range board {
			board[idx].Highlighted = res.Contains(idx)
		}
	}

	s.history = append(s.history[:s.step+1], Snapshot{Board: board, Selected: i})
	s.step = len(s.history) - 1
	return true
}

// JumpTo views the snapshot at step without discarding later ones.
// Panics if step is outside the history.
func (s *State) JumpTo(step int) {
	if step < 0 || step >= len(s.history) {
		panic(fmt.Errorf("%w: %d (history length %d)", ErrStepOutOfRange, step, len(s.history)))
	}
	s.step = step
}

// ToggleReverseDisplay flips the order in which Moves lists history.
func (s *State) ToggleReverseDisplay() {
	s.reversed = !s.reversed
}

// Reversed reports whether Moves lists the newest entry first.
func (s *State) Reversed() bool {
	return s.reversed
}

// Step returns the index of the viewed snapshot.
func (s *State) Step() int {
	return s.step
}

// Len returns the number of snapshots, including the opening one.
func (s *State) Len() int {
	return len(s.history)
}

// Snapshot returns the snapshot at step. Panics if step is outside the history.
func (s *State) Snapshot(step int) Snapshot {
	if step < 0 || step >= len(s.history) {
		panic(fmt.Errorf("%w: %d (history length %d)", ErrStepOutOfRange, step, len(s.history)))
	}
	return s.history[step]
}

// Current returns the viewed snapshot.
func (s *State) Current() Snapshot {
	return s.Snapshot(s.step)
}

// History returns a copy of every snapshot in play order.
func (s *State) History() []Snapshot {
	out := make([]Snapshot, len(s.history))
	copy(out, s.history)
	return out
}

// NextMark is X on even steps and O on odd ones.
func (s *State) NextMark() Mark {
	if s.step%2 == 0 {
		return X
	}
	return O
}

// Phase classifies the viewed snapshot.
func (s *State) Phase() Phase {
	return s.Current().Phase()
}

// Outcome evaluates the viewed snapshot.
func (s *State) Outcome() (Result, bool) {
	return Evaluate(s.Current().Board)
}

// Finished reports whether the newest snapshot is won or drawn, regardless
// of which snapshot is being viewed.
func (s *State) Finished() bool {
	return s.history[len(s.history)-1].Phase() != PhaseInProgress
}

// MoveList returns the cells filled from the opening up to the viewed step.
func (s *State) MoveList() []int {
	cells := make([]int, 0, s.step)
	for _, snap := range s.history[1 : s.step+1] {
		cells = append(cells, snap.Selected)
	}
	return cells
}
