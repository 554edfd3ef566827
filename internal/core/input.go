package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key
// presses and mouse clicks. This allows games to work with high-level intents
// rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionToggleLight0        // 1 key or click - toggle signal at intersection 0
	ActionToggleLight1        // 2 key or click - toggle signal at intersection 1
	ActionToggleLight2        // 3 key or click - toggle signal at intersection 2
	ActionToggleLight3        // 4 key or click - toggle signal at intersection 3
	ActionConfirm             // Enter - confirm selection in menu
	ActionBack                // B, Escape - go back
	ActionRestart             // R key - restart the session
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionPause               // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	if idx, ok := a.LightIndex(); ok {
		return fmt.Sprintf("ToggleLight%d", idx)
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// ToggleLightAction returns the toggle action for the given intersection
// index. Panics if the index is outside 0..3; intersection identifiers are
// fixed at construction time and an unknown index is a programming error.
func ToggleLightAction(idx int) Action {
	if idx < 0 || idx > 3 {
		panic(fmt.Sprintf("core: no toggle action for light index %d", idx))
	}
	return ActionToggleLight0 + Action(idx)
}

// LightIndex returns the intersection index for a toggle action, and whether
// the action is a light toggle at all.
func (a Action) LightIndex() (int, bool) {
	if a < ActionToggleLight0 || a > ActionToggleLight3 {
		return 0, false
	}
	return int(a - ActionToggleLight0), true
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
