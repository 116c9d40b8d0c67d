// Package modes sequences the menu, play and game-over screens around the engine.
package modes

import (
	"strconv"
	"sync"

	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/lixenwraith/crystal-snake/input"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("modes")

// Controller routes actions by mode and follows engine events to switch modes.
// The engine is never called with the controller lock held, since engine calls
// dispatch events back into HandleEvent.
type Controller struct {
	mu sync.Mutex

	game   GameControl
	pauser Pauser // nil disables pause
	base   engine.Config

	mode       Mode
	difficulty engine.Difficulty
	speedMs    int
	score      int
	last       *Result
}

// NewController creates a controller on the menu screen. base supplies the board;
// its SpeedMs is the initial selection, matched to the nearest named difficulty.
func NewController(game GameControl, pauser Pauser, base engine.Config) *Controller {
	d, ms, err := engine.ParseDifficulty(strconv.Itoa(base.SpeedMs))
	if err != nil {
		d, ms = engine.DifficultyNormal, engine.DifficultyNormal.SpeedMs()
	}
	return &Controller{
		game:       game,
		pauser:     pauser,
		base:       base,
		mode:       ModeMenu,
		difficulty: d,
		speedMs:    ms,
	}
}

// Handle applies a player action; false means quit
func (c *Controller) Handle(a input.Action) bool {
	if a == input.ActionQuit {
		c.game.Stop()
		return false
	}

	c.mu.Lock()
	mode := c.mode
	c.mu.Unlock()

	if d, ok := a.Difficulty(); ok {
		if mode != ModePlaying {
			c.SelectDifficulty(d)
		}
		return true
	}

	switch mode {
	case ModeMenu:
		c.handleMenu(a)
	case ModePlaying:
		c.handlePlaying(a)
	case ModeGameOver:
		if a == input.ActionStart {
			c.startGame()
		}
	}
	return true
}

func (c *Controller) handleMenu(a input.Action) {
	switch a {
	case input.ActionStart:
		c.startGame()
	case input.ActionUp, input.ActionLeft:
		c.cycleDifficulty(-1)
	case input.ActionDown, input.ActionRight:
		c.cycleDifficulty(1)
	}
}

func (c *Controller) handlePlaying(a input.Action) {
	if d, ok := a.Direction(); ok {
		if c.pauser != nil && c.pauser.IsPaused() {
			return
		}
		c.game.RequestDirection(d)
		return
	}
	if a == input.ActionPause && c.pauser != nil {
		paused := c.pauser.TogglePause()
		log.Debugf("pause toggled: %v", paused)
	}
}

// SelectDifficulty sets the difficulty used by the next game
func (c *Controller) SelectDifficulty(d engine.Difficulty) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.difficulty = d
	c.speedMs = d.SpeedMs()
}

func (c *Controller) cycleDifficulty(step int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(engine.Difficulties)
	idx := 0
	for i, d := range engine.Difficulties {
		if d == c.difficulty {
			idx = i
		}
	}
	c.difficulty = engine.Difficulties[((idx+step)%n+n)%n]
	c.speedMs = c.difficulty.SpeedMs()
}

// StartGame begins a game at the selected difficulty from any mode
func (c *Controller) StartGame() error {
	return c.startGame()
}

func (c *Controller) startGame() error {
	c.mu.Lock()
	cfg := c.base
	cfg.SpeedMs = c.speedMs
	c.mu.Unlock()

	if c.pauser != nil {
		c.pauser.Resume()
	}
	if err := c.game.Start(cfg); err != nil {
		log.Errorf("start failed: %v", err)
		return err
	}
	return nil
}

// View returns a copy of the controller state
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Mode:       c.mode,
		Difficulty: c.difficulty,
		SpeedMs:    c.speedMs,
		Score:      c.score,
	}
	if c.pauser != nil {
		v.Paused = c.pauser.IsPaused()
	}
	if c.last != nil {
		r := *c.last
		v.Last = &r
	}
	return v
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// HandleEvent implements engine.EventHandler
func (c *Controller) HandleEvent(ev engine.GameEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case engine.EventStarted:
		c.mode = ModePlaying
		c.score = 0
	case engine.EventScoreChanged:
		if p, ok := ev.Payload.(engine.ScorePayload); ok {
			c.score = p.Score
		}
	case engine.EventGameOver, engine.EventBoardFull:
		p, _ := ev.Payload.(engine.GameOverPayload)
		c.mode = ModeGameOver
		c.last = &Result{
			Score:  p.Score,
			Length: p.Length,
			Cause:  p.Cause,
			Won:    ev.Type == engine.EventBoardFull,
		}
		log.Infof("game over (%s): score %d, length %d", p.Reason, p.Score, p.Length)
	}
}

// EventTypes implements engine.EventHandler
func (c *Controller) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventStarted,
		engine.EventScoreChanged,
		engine.EventGameOver,
		engine.EventBoardFull,
	}
}
