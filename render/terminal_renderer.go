// Package render draws the board, status line and screens on a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crystal-snake/constants"
	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/lixenwraith/crystal-snake/modes"
)

// Frame is everything one redraw needs
type Frame struct {
	Config engine.Config
	Board  engine.RenderPayload
	View   modes.View
}

// Layout places the bordered board on the screen
type Layout struct {
	OriginX, OriginY int // Top-left border cell
	Columns, Rows    int // Board size in terminal cells, border excluded
}

// ComputeLayout centres the board horizontally below the status line
func ComputeLayout(cfg engine.Config, screenWidth int) Layout {
	l := Layout{
		OriginY: 1,
		Columns: cfg.GridWidth * constants.CellColumns,
		Rows:    cfg.GridHeight,
	}
	if extra := screenWidth - (l.Columns + 2); extra > 0 {
		l.OriginX = extra / 2
	}
	return l
}

// CellPosition maps a board pixel coordinate to the first terminal column of its cell
func (l Layout) CellPosition(cfg engine.Config, p engine.Point) (x, y int) {
	col := p.X / cfg.CellSize
	row := p.Y / cfg.CellSize
	return l.OriginX + 1 + col*constants.CellColumns, l.OriginY + 1 + row
}

// HintRow is the line below the bottom border
func (l Layout) HintRow() int {
	return l.OriginY + l.Rows + 2
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer drawing on screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws the entire frame and shows it; cells outside the screen are clipped
func (r *TerminalRenderer) RenderFrame(f Frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	width, _ := r.screen.Size()
	layout := ComputeLayout(f.Config, width)

	r.drawStatusLine(f, width, defaultStyle)
	r.drawBorder(layout, defaultStyle)

	switch f.View.Mode {
	case modes.ModeMenu:
		r.drawMenu(f, layout, defaultStyle)
		r.drawHint(layout, constants.MenuHintText, defaultStyle)
	case modes.ModePlaying:
		r.drawBoard(f, layout, defaultStyle)
		if f.View.Paused {
			r.drawCentered(layout, layout.OriginY+1+layout.Rows/2, constants.PausedText,
				defaultStyle.Background(RgbPausedBg).Foreground(RgbStatusText))
		}
		r.drawHint(layout, constants.PlayHintText, defaultStyle)
	case modes.ModeGameOver:
		r.drawBoard(f, layout, defaultStyle)
		r.drawGameOver(f, layout, defaultStyle)
		r.drawHint(layout, constants.AgainHintText, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawStatusLine(f Frame, width int, defaultStyle tcell.Style) {
	style := defaultStyle.Background(RgbStatusBg).Foreground(RgbStatusText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	left := fmt.Sprintf(" SCORE %d  %s %dms ", f.View.Score, f.View.Difficulty, f.View.SpeedMs)
	x := r.drawText(0, 0, left, style)

	if f.View.Mode == modes.ModePlaying && f.View.Paused {
		r.drawText(x, 0, constants.PausedText, defaultStyle.Background(RgbPausedBg).Foreground(RgbStatusText))
	}

	title := " " + constants.TitleText + " "
	if tx := width - len([]rune(title)); tx > x+len(constants.PausedText) {
		r.drawText(tx, 0, title, style.Bold(true))
	}
}

func (r *TerminalRenderer) drawBorder(l Layout, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	right := l.OriginX + l.Columns + 1
	bottom := l.OriginY + l.Rows + 1

	for x := l.OriginX; x <= right; x++ {
		r.screen.SetContent(x, l.OriginY, constants.GlyphBorder, nil, style)
		r.screen.SetContent(x, bottom, constants.GlyphBorder, nil, style)
	}
	for y := l.OriginY + 1; y < bottom; y++ {
		r.screen.SetContent(l.OriginX, y, constants.GlyphBorder, nil, style)
		r.screen.SetContent(right, y, constants.GlyphBorder, nil, style)
	}
}

func (r *TerminalRenderer) drawBoard(f Frame, l Layout, defaultStyle tcell.Style) {
	if f.Board.Active {
		x, y := l.CellPosition(f.Config, f.Board.Food)
		r.screen.SetContent(x, y, constants.GlyphFood, nil, defaultStyle.Foreground(RgbFood))
	}

	bodyStyle := defaultStyle.Foreground(RgbSnakeBody)
	for i := len(f.Board.Segments) - 1; i >= 1; i-- {
		r.fillCell(f.Config, l, f.Board.Segments[i], constants.GlyphBody, bodyStyle)
	}
	if len(f.Board.Segments) > 0 {
		r.fillCell(f.Config, l, f.Board.Segments[0], constants.GlyphHead, defaultStyle.Foreground(RgbSnakeHead))
	}
}

func (r *TerminalRenderer) fillCell(cfg engine.Config, l Layout, p engine.Point, glyph rune, style tcell.Style) {
	x, y := l.CellPosition(cfg, p)
	for dx := 0; dx < constants.CellColumns; dx++ {
		r.screen.SetContent(x+dx, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawMenu(f Frame, l Layout, defaultStyle tcell.Style) {
	mid := l.OriginY + 1 + l.Rows/2 - len(engine.Difficulties)
	r.drawCentered(l, mid-2, constants.TitleText, defaultStyle.Foreground(RgbSnakeHead).Bold(true))

	for i, d := range engine.Difficulties {
		line := fmt.Sprintf("  %d  %-6s %3dms  ", i+1, d, d.SpeedMs())
		style := defaultStyle
		if d == f.View.Difficulty {
			line = fmt.Sprintf("> %d  %-6s %3dms <", i+1, d, f.View.SpeedMs)
			style = defaultStyle.Foreground(RgbSelected).Bold(true)
		}
		r.drawCentered(l, mid+i, line, style)
	}
}

func (r *TerminalRenderer) drawGameOver(f Frame, l Layout, defaultStyle tcell.Style) {
	if f.View.Last == nil {
		return
	}

	text, bg := constants.GameOverText, RgbGameOverBg
	if f.View.Last.Won {
		text, bg = constants.BoardFullText, RgbBoardFullBg
	}

	mid := l.OriginY + 1 + l.Rows/2
	r.drawCentered(l, mid-1, " "+text+" ", defaultStyle.Background(bg).Foreground(RgbStatusText).Bold(true))
	r.drawCentered(l, mid+1, fmt.Sprintf(" score %d  length %d ", f.View.Last.Score, f.View.Last.Length), defaultStyle)
}

func (r *TerminalRenderer) drawHint(l Layout, text string, defaultStyle tcell.Style) {
	r.drawText(l.OriginX, l.HintRow(), text, defaultStyle.Foreground(RgbHint))
}

// drawCentered draws text centred on row over whatever is beneath
func (r *TerminalRenderer) drawCentered(l Layout, row int, text string, style tcell.Style) {
	n := len([]rune(text))
	x := l.OriginX + 1 + (l.Columns-n)/2
	if x < l.OriginX+1 {
		x = l.OriginX + 1
	}
	r.drawText(x, row, text, style)
}

// drawText writes text from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
