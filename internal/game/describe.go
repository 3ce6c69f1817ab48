package game

import "fmt"

// MoveDescriptor is one history entry as offered to the player for jumping.
type MoveDescriptor struct {
	Step    int    // Argument for JumpTo
	Label   string // "Go to game start" or "Go to move #k: ..."
	Current bool   // Step is the viewed snapshot
}

// DescriptorMark is the mark shown on the label of move k: O for even k,
// X for odd k. It is derived from parity alone, never from board content.
func DescriptorMark(k int) Mark {
	if k%2 == 0 {
		return O
	}
	return X
}

// Describe returns the label for history entry k of snap.
func Describe(k int, snap Snapshot) string {
	if k == 0 || !snap.HasSelection() {
		return "Go to game start"
	}
	col, row := Coords(snap.Selected)
	return fmt.Sprintf("Go to move #%d: %s to (%d, %d)", k, DescriptorMark(k), col+1, row+1)
}

// Moves returns one descriptor per snapshot, newest first when the reversed
// display flag is set. Steps always refer to play order.
func (s *State) Moves() []MoveDescriptor {
	out := make([]MoveDescriptor, s.Len())
	for k := range out {
		pos := k
		if s.reversed {
			pos = s.Len() - 1 - k
		}
		out[pos] = MoveDescriptor{
			Step:    k,
			Label:   Describe(k, s.Snapshot(k)),
			Current: k == s.step,
		}
	}
	return out
}

// Status returns the line shown above the move list for the viewed snapshot.
func (s *State) Status() string {
	if res, won := s.Outcome(); won {
		return "Winner: " + res.Mark.String()
	}
	if s.Current().Board.Full() {
		return "Draw!"
	}
	return "Next Player: " + s.NextMark().String()
}
