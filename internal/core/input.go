package core

// Action represents a semantic input, abstracted from physical keys or buttons.
// Adapters translate their own input events into actions; the runner consumes them.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W
	ActionStart        // Enter
	ActionReset        // R
	ActionQuit         // Q, Ctrl+C, Escape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
