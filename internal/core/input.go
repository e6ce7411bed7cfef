package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so the game screen works with
// high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow, K - move cursor up along a column
	ActionDown             // S, Down arrow, J - move cursor down along a column
	ActionLeft             // A, Left arrow, H - move cursor left along a row
	ActionRight            // D, Right arrow, L - move cursor right along a row
	ActionConfirm          // Enter, Space - pick the cell under the cursor
	ActionTip              // T - show a suggested move
	ActionSurrender        // G - give up the current round
	ActionNewGame          // N - start a fresh round
	ActionRestart          // R - restart after game over
	ActionBack             // B, Escape - go back to menu
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionTip:
		return "Tip"
	case ActionSurrender:
		return "Surrender"
	case ActionNewGame:
		return "NewGame"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
