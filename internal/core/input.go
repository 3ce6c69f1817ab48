package core

// Action represents a semantic session action, abstracted from physical key presses.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // k, Up arrow - cursor or list selection up
	ActionDown                 // j, Down arrow - cursor or list selection down
	ActionLeft                 // h, Left arrow - board cursor left
	ActionRight                // l, Right arrow - board cursor right
	ActionConfirm              // Enter, Space - place a mark or jump to the selected move
	ActionSwitchFocus          // Tab - toggle focus between board and move list
	ActionToggleReverse        // r - reverse move list order
	ActionNewGame              // n - discard the session's game and start over
	ActionHelp                 // ? - toggle full help
	ActionQuit                 // q, Ctrl+C - exit session
)

// Delta returns the cursor movement for a directional action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
