package modes

import "github.com/lixenwraith/crystal-snake/engine"

// Mode is the screen the player is on
type Mode uint8

const (
	ModeMenu     Mode = iota // Difficulty selection
	ModePlaying              // Engine running or paused
	ModeGameOver             // Collision or full board
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameControl is the part of the engine the controller drives
type GameControl interface {
	Start(cfg engine.Config) error
	RequestDirection(d engine.Direction)
	Stop()
}

// Pauser freezes and resumes tick scheduling
type Pauser interface {
	TogglePause() bool
	Resume()
	IsPaused() bool
}

// Result describes the last finished game
type Result struct {
	Score  int
	Length int
	Cause  engine.Cause
	Won    bool
}

// View is a copy of controller state for drawing
type View struct {
	Mode       Mode
	Difficulty engine.Difficulty
	SpeedMs    int
	Paused     bool
	Score      int
	Last       *Result // nil before the first game ends
}
