package engine

import "strings"

// Point is a board coordinate in pixel units aligned to the configured cell size
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied component-wise by k
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Direction is one of the four movement directions
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Vector returns the unit step for d, with Y growing downwards
func (d Direction) Vector() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{Y: 1}
	}
}

// String returns the lowercase name of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a direction name, case-insensitive
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return DirRight, true
	case "left":
		return DirLeft, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	}
	return 0, false
}

// GameState is the engine lifecycle state
type GameState int

const (
	StateIdle GameState = iota
	StateRunning
	StateOver
	StateWon // board full, no cell left for food
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a game
func (s GameState) Terminal() bool {
	return s == StateOver || s == StateWon
}

// Cause identifies why a game ended
type Cause int

const (
	CauseWall Cause = iota
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}
