package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/crystal-snake/constants"
)

// Sentinel errors
var (
	ErrInvalidConfig     = errors.New("invalid game config")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Config holds the per-build constants of a game
type Config struct {
	SpeedMs    int // Tick interval in milliseconds
	GridWidth  int // Board width in cells
	GridHeight int // Board height in cells
	CellSize   int // Pixels per cell, coordinates are multiples of this

	InitialHead      Point // Head position in pixels
	InitialLength    int
	InitialDirection Direction

	Reward       int    // Score added per food
	FoodAttempts int    // Random draws before the exhaustive free-cell scan, 0 = default
	Seed         uint64 // 0 = time-seeded
}

// ClassicConfig returns the 20x20 single-segment build
func ClassicConfig() Config {
	return Config{
		SpeedMs:          constants.ClassicSpeedMs,
		GridWidth:        constants.ClassicGridWidth,
		GridHeight:       constants.ClassicGridHeight,
		CellSize:         constants.ClassicCellSize,
		InitialHead:      Point{X: constants.ClassicHeadX, Y: constants.ClassicHeadY},
		InitialLength:    constants.ClassicInitialLength,
		InitialDirection: DirRight,
		Reward:           constants.ClassicReward,
		FoodAttempts:     constants.FoodSampleAttempts,
	}
}

// CrystalConfig returns the five-segment build with difficulty selection
func CrystalConfig() Config {
	return Config{
		SpeedMs:          constants.CrystalSpeedMs,
		GridWidth:        constants.CrystalGridWidth,
		GridHeight:       constants.CrystalGridHeight,
		CellSize:         constants.CrystalCellSize,
		InitialHead:      Point{X: constants.CrystalHeadX, Y: constants.CrystalHeadY},
		InitialLength:    constants.CrystalInitialLength,
		InitialDirection: DirRight,
		Reward:           constants.CrystalReward,
		FoodAttempts:     constants.FoodSampleAttempts,
	}
}

// PresetConfig resolves a preset by name
func PresetConfig(name string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return ClassicConfig(), nil
	case "crystal", "":
		return CrystalConfig(), nil
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Speed returns the tick interval
func (c Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// Width returns the board width in pixels
func (c Config) Width() int {
	return c.GridWidth * c.CellSize
}

// Height returns the board height in pixels
func (c Config) Height() int {
	return c.GridHeight * c.CellSize
}

// Contains reports whether p lies on the board
func (c Config) Contains(p Point) bool {
	return p.X >= 0 && p.X < c.Width() && p.Y >= 0 && p.Y < c.Height()
}

// CellIndex maps an on-board pixel coordinate to a row-major cell index
func (c Config) CellIndex(p Point) int {
	return (p.Y/c.CellSize)*c.GridWidth + p.X/c.CellSize
}

// CellPoint is the inverse of CellIndex
func (c Config) CellPoint(idx int) Point {
	return Point{X: (idx % c.GridWidth) * c.CellSize, Y: (idx / c.GridWidth) * c.CellSize}
}

// InitialBody returns the starting segments, head first, trailing opposite the initial direction
func (c Config) InitialBody() []Point {
	back := c.InitialDirection.Opposite().Vector().Scale(c.CellSize)
	body := make([]Point, c.InitialLength)
	p := c.InitialHead
	for i := range body {
		body[i] = p
		p = p.Add(back)
	}
	return body
}

// Validate checks that a game can start with c
func (c Config) Validate() error {
	switch {
	case c.SpeedMs <= 0:
		return fmt.Errorf("%w: speed must be positive, got %d", ErrInvalidConfig, c.SpeedMs)
	case c.GridWidth <= 0 || c.GridHeight <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.GridWidth, c.GridHeight)
	case c.GridWidth > constants.MaxGridCells/c.GridHeight:
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidConfig, c.GridWidth, c.GridHeight, constants.MaxGridCells)
	case c.CellSize <= 0 || c.CellSize > constants.MaxCellSize:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.Reward < 0:
		return fmt.Errorf("%w: negative reward %d", ErrInvalidConfig, c.Reward)
	case c.FoodAttempts < 0:
		return fmt.Errorf("%w: negative food attempts %d", ErrInvalidConfig, c.FoodAttempts)
	case c.InitialLength < 1:
		return fmt.Errorf("%w: initial length %d", ErrInvalidConfig, c.InitialLength)
	case c.InitialLength >= c.GridWidth*c.GridHeight:
		return fmt.Errorf("%w: initial length %d leaves no cell for food", ErrInvalidConfig, c.InitialLength)
	case c.InitialDirection < DirRight || c.InitialDirection > DirDown:
		return fmt.Errorf("%w: initial direction %d", ErrInvalidConfig, c.InitialDirection)
	case c.InitialHead.X%c.CellSize != 0 || c.InitialHead.Y%c.CellSize != 0:
		return fmt.Errorf("%w: head %v not aligned to cell size %d", ErrInvalidConfig, c.InitialHead, c.CellSize)
	}
	for _, p := range c.InitialBody() {
		if !c.Contains(p) {
			return fmt.Errorf("%w: initial segment %v outside %dx%d board", ErrInvalidConfig, p, c.Width(), c.Height())
		}
	}
	return nil
}

// Difficulty is a named tick interval
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Difficulties lists the selectable difficulties in menu order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// SpeedMs returns the tick interval for d
func (d Difficulty) SpeedMs() int {
	switch d {
	case DifficultyEasy:
		return constants.EasySpeedMs
	case DifficultyHard:
		return constants.HardSpeedMs
	default:
		return constants.NormalSpeedMs
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty resolves a difficulty name or a raw tick interval in milliseconds,
// returning the matching named difficulty and the interval to use
func ParseDifficulty(s string) (Difficulty, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties {
		if s == d.String() {
			return d, d.SpeedMs(), nil
		}
	}
	if s == "medium" {
		return DifficultyNormal, DifficultyNormal.SpeedMs(), nil
	}

	ms, err := strconv.Atoi(s)
	if err != nil || ms <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	switch {
	case ms >= constants.EasySpeedMs:
		return DifficultyEasy, ms, nil
	case ms <= constants.HardSpeedMs:
		return DifficultyHard, ms, nil
	default:
		return DifficultyNormal, ms, nil
	}
}

// WithDifficulty returns c ticking at d's interval
func (c Config) WithDifficulty(d Difficulty) Config {
	c.SpeedMs = d.SpeedMs()
	return c
}
