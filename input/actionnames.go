package input

import (
	"strings"

	"github.com/lixenwraith/crystal-snake/engine"
)

// actionRegistry maps canonical action names to actions.
// Used to resolve text commands arriving over the network.
var actionRegistry = map[string]Action{
	"up":     ActionUp,
	"down":   ActionDown,
	"left":   ActionLeft,
	"right":  ActionRight,
	"start":  ActionStart,
	"pause":  ActionPause,
	"quit":   ActionQuit,
	"easy":   ActionEasy,
	"normal": ActionNormal,
	"hard":   ActionHard,
}

// ParseAction resolves a canonical action name, case-insensitive
func ParseAction(name string) Action {
	return actionRegistry[strings.ToLower(strings.TrimSpace(name))]
}

// ParseDirectionMessage resolves a direction command such as "up" to its movement action;
// anything else is ActionNone
func ParseDirectionMessage(msg string) Action {
	d, ok := engine.ParseDirection(msg)
	if !ok {
		return ActionNone
	}
	return FromDirection(d)
}

// FromDirection is the inverse of Action.Direction
func FromDirection(d engine.Direction) Action {
	switch d {
	case engine.DirUp:
		return ActionUp
	case engine.DirDown:
		return ActionDown
	case engine.DirLeft:
		return ActionLeft
	case engine.DirRight:
		return ActionRight
	}
	return ActionNone
}
