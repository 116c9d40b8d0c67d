package constants

import "time"

// Classic Build Constants (20x20 board, single-segment start)
const (
	ClassicGridWidth     = 20
	ClassicGridHeight    = 20
	ClassicCellSize      = 20
	ClassicHeadX         = ClassicCellSize * 5
	ClassicHeadY         = ClassicCellSize * 5
	ClassicInitialLength = 1
	ClassicReward        = 1
	ClassicSpeedMs       = 100
)

// Crystal Build Constants (five-segment start, 15 points per crystal)
const (
	CrystalGridWidth     = 40
	CrystalGridHeight    = 32
	CrystalCellSize      = 25
	CrystalHeadX         = 400
	CrystalHeadY         = 500
	CrystalInitialLength = 5
	CrystalReward        = 15
	CrystalSpeedMs       = 150
)

// Difficulty Tick Intervals (lower = faster)
const (
	EasySpeedMs   = 150
	NormalSpeedMs = 100
	HardSpeedMs   = 50
)

// Board Limits
const (
	// MaxGridCells bounds GridWidth*GridHeight
	MaxGridCells = 1 << 20

	// MaxCellSize bounds the pixel size of one cell
	MaxCellSize = 1 << 12
)

// Food Placement
const (
	// FoodSampleAttempts bounds random draws before falling back to a free-cell scan
	FoodSampleAttempts = 64
)

// Scheduler Timing
const (
	// MaxTickLag is how many intervals the scheduler may fall behind before resyncing
	MaxTickLag = 2

	// PausedPollFactor multiplies the tick interval while paused
	PausedPollFactor = 2
)

// UI Loop Timing
const (
	// FrameUpdateInterval redraws the status line while idle (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// UIEventBuffer is the capacity of the engine-to-UI event channel
	UIEventBuffer = 64
)
