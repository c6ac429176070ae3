package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // R - start a new round
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Every key event is kept, repeats included, in arrival order.
type InputFrame struct {
	order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records one triggered action.
func (f *InputFrame) Set(a Action) {
	f.order = append(f.order, a)
}

// Ordered returns the triggered actions in the order they arrived.
func (f InputFrame) Ordered() []Action {
	out := make([]Action, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.order)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.order = f.order[:0]
}
