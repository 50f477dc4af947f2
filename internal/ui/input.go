package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/termpong/pingpong/internal/game"
)

// HoldFrames is how long an action stays down after its last key press.
// Terminals only report presses (and auto-repeats), never releases.
const HoldFrames = 8

// KeyToAction converts a key event to a game action
func KeyToAction(key tcell.Key, r rune) (game.Action, bool) {
	switch key {
	case tcell.KeyUp:
		return game.ActionMoveUp, true
	case tcell.KeyDown:
		return game.ActionMoveDown, true
	case tcell.KeyEscape:
		return game.ActionQuit, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.ActionMoveUp, true
		case 's', 'S':
			return game.ActionMoveDown, true
		case '3':
			return game.ActionSelect3, true
		case '5':
			return game.ActionSelect5, true
		case '7':
			return game.ActionSelect7, true
		case 'r', 'R':
			return game.ActionRestart, true
		case 'q', 'Q':
			return game.ActionQuit, true
		}
	}
	return 0, false
}

// IsInterruptKey returns true for keys that end the session in any state
func IsInterruptKey(key tcell.Key) bool {
	return key == tcell.KeyCtrlC
}

// Keyboard turns key presses into per-frame key-down state.
type Keyboard struct {
	held map[game.Action]int
}

func NewKeyboard() *Keyboard {
	return &Keyboard{held: make(map[game.Action]int)}
}

// Press marks the action as down for the next HoldFrames frames. Pressing
// the opposite direction releases the other one immediately.
func (k *Keyboard) Press(a game.Action) {
	switch a {
	case game.ActionMoveUp:
		delete(k.held, game.ActionMoveDown)
	case game.ActionMoveDown:
		delete(k.held, game.ActionMoveUp)
	}
	k.held[a] = HoldFrames
}

// Frame returns the actions currently down and ages them by one frame.
func (k *Keyboard) Frame() game.InputFrame {
	var frame game.InputFrame
	for a, left := range k.held {
		frame.Set(a)
		if left <= 1 {
			delete(k.held, a)
		} else {
			k.held[a] = left - 1
		}
	}
	return frame
}

// Reset releases every action.
func (k *Keyboard) Reset() {
	clear(k.held)
}
