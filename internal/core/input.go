package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A - paddle left (held)
	ActionRight            // Right arrow, D - paddle right (held)
	ActionLaunch           // Space - start a game from the start screen
	ActionConfirm          // Enter - start a game / confirm menu entry
	ActionBack             // Esc, B - back to the menu
	ActionPause            // P - pause/resume
	ActionRestart          // R - back to the start screen
	ActionQuit             // Q, Ctrl+C - exit
	ActionLevelNext        // ] or 2/3 on the start screen
	ActionLevelPrev        // [
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionLevelNext:
		return "LevelNext"
	case ActionLevelPrev:
		return "LevelPrev"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Left and Right are the held direction flags; the rest are one-shot.
type InputFrame struct {
	Actions map[Action]bool

	pointerX   float64
	hasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the pointer position in field units.
func (f *InputFrame) SetPointer(x float64) {
	f.pointerX = x
	f.hasPointer = true
}

// Pointer returns the pointer position, if one was recorded this frame.
func (f InputFrame) Pointer() (float64, bool) {
	return f.pointerX, f.hasPointer
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointerX = 0
	f.hasPointer = false
}
