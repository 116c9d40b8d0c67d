// Package input maps raw key presses and text commands to game actions.
package input

import "github.com/lixenwraith/crystal-snake/engine"

// Action is a semantic input, independent of the key that produced it
type Action uint8

const (
	ActionNone Action = iota

	// Movement
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Game flow
	ActionStart // Enter, Space
	ActionPause // p
	ActionQuit  // q, Esc, Ctrl+C

	// Difficulty selection
	ActionEasy   // 1
	ActionNormal // 2
	ActionHard   // 3
)

// Direction returns the movement direction for a movement action
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.DirUp, true
	case ActionDown:
		return engine.DirDown, true
	case ActionLeft:
		return engine.DirLeft, true
	case ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// Difficulty returns the difficulty picked by a selection action
func (a Action) Difficulty() (engine.Difficulty, bool) {
	switch a {
	case ActionEasy:
		return engine.DifficultyEasy, true
	case ActionNormal:
		return engine.DifficultyNormal, true
	case ActionHard:
		return engine.DifficultyHard, true
	}
	return 0, false
}

// String returns the canonical action name
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "none"
}
