package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W - left paddle up
	ActionDown           // S - left paddle down
	ActionAltUp          // Up arrow - right paddle up in versus, left paddle otherwise
	ActionAltDown        // Down arrow - right paddle down in versus, left paddle otherwise
	ActionServe          // Space - launch the ball while serving
	ActionBack           // B - back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Escape
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionAltUp:   "AltUp",
	ActionAltDown: "AltDown",
	ActionServe:   "Serve",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Axis folds an up/down action pair into -1 (up), 0 or +1 (down).
// Pressing both cancels out.
func (f InputFrame) Axis(up, down Action) int {
	axis := 0
	if f.Has(up) {
		axis--
	}
	if f.Has(down) {
		axis++
	}
	return axis
}
