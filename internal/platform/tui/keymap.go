package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridlock/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// Signal toggles: digits 1-4 address the four intersections.
	switch key {
	case "1", "2", "3", "4":
		return core.ToggleLightAction(int(key[0] - '1')), false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// LightHitTester is implemented by games whose signals can be clicked.
// The platform probes for it with a type assertion; games without it simply
// ignore the mouse.
type LightHitTester interface {
	LightAt(px, py int) (int, bool)
}

// MapMouseToFrame translates a left-click into a light toggle, if the game
// exposes hit testing and the click lands on a signal. Returns true if an
// action was added to the frame.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, game any, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	ht, ok := game.(LightHitTester)
	if !ok {
		return false
	}
	idx, hit := ht.LightAt(msg.X, msg.Y)
	if !hit {
		return false
	}
	frame.Set(core.ToggleLightAction(idx))
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
