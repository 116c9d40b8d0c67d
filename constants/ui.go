package constants

// Board Glyphs (each board cell is CellColumns terminal columns wide)
const (
	CellColumns = 2

	GlyphHead   = '█'
	GlyphBody   = '▓'
	GlyphFood   = '◆'
	GlyphBorder = '░'
)

// Status Line Text
const (
	TitleText     = "CRYSTAL SNAKE"
	GameOverText  = "GAME OVER"
	BoardFullText = "BOARD FULL"
	PausedText    = " PAUSED "
	MenuHintText  = "1/2/3 difficulty  enter play  q quit"
	PlayHintText  = "arrows/hjkl/wasd move  p pause  q quit"
	AgainHintText = "enter play again  1/2/3 difficulty  q quit"
)
