package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 95, 120)   // Muted slate
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Near white
	RgbHint       = tcell.NewRGBColor(140, 140, 150) // Gray

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 170, 0)   // Normal Green

	RgbFood = tcell.NewRGBColor(230, 80, 255) // Crystal magenta

	// Status line
	RgbStatusBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbPausedBg    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOverBg  = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbBoardFullBg = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbSelected    = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow for the chosen difficulty
)
