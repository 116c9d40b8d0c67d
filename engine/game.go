package engine

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("engine")

// Snapshot is a copy of the engine state, safe to keep and read from any goroutine
type Snapshot struct {
	State    GameState
	Score    int
	Segments []Point // Head first
	Food     Food
	Current  Direction
	Pending  Direction
	Frame    int64
	Session  string
	Config   Config
}

// Engine owns the snake, food, directions and score. All mutation goes through
// Start, RequestDirection, Tick and Stop, serialised on one mutex; events produced
// under the lock are dispatched after it is released.
type Engine struct {
	mu sync.Mutex

	cfg     Config
	state   GameState
	snake   *snake
	food    Food
	current Direction
	pending Direction
	score   int
	frame   int64
	session string

	// generation invalidates tick callbacks handed to the scheduler by earlier runs
	generation uint64
	halted     bool // Stop was called on the current run

	rng    *rand.Rand
	placer *foodPlacer

	scheduler    Scheduler
	timeProvider TimeProvider
	queue        *EventQueue
	router       *EventRouter
}

// NewEngine creates an idle engine. A nil scheduler leaves ticking to the caller;
// a nil time provider uses the system clock.
func NewEngine(scheduler Scheduler, timeProvider TimeProvider) *Engine {
	if timeProvider == nil {
		timeProvider = NewMonotonicTimeProvider()
	}
	queue := NewEventQueue()
	return &Engine{
		state:        StateIdle,
		scheduler:    scheduler,
		timeProvider: timeProvider,
		queue:        queue,
		router:       NewEventRouter(queue),
	}
}

// RegisterEventHandler subscribes handler to its declared event types
func (e *Engine) RegisterEventHandler(handler EventHandler) {
	e.router.Register(handler)
}

// Start resets the board for cfg and begins a new game, replacing any game in progress
func (e *Engine) Start(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.cfg = cfg
	e.rng = newRand(cfg.Seed, func() int64 { return e.timeProvider.Now().UnixNano() })
	e.snake = newSnake(&e.cfg)
	e.snake.reset(cfg.InitialBody())
	e.placer = newFoodPlacer(&e.cfg, e.rng)
	e.current = cfg.InitialDirection
	e.pending = cfg.InitialDirection
	e.score = 0
	e.frame = 0
	e.session = uuid.NewString()
	e.generation++
	e.halted = false
	e.state = StateRunning

	// Validate guarantees at least one free cell
	at, ok := e.placer.place(e.snake)
	e.food = Food{At: at, Active: ok}

	e.push(EventStarted, nil)
	e.push(EventScoreChanged, ScorePayload{Score: 0})
	e.push(EventRender, e.renderPayload())

	if e.scheduler != nil {
		gen := e.generation
		e.scheduler.Start(func() { e.tick(gen) }, cfg.Speed())
	}
	log.Infof("session %s started: %dx%d cells, cell %d, speed %v, length %d",
		e.session, cfg.GridWidth, cfg.GridHeight, cfg.CellSize, cfg.Speed(), cfg.InitialLength)
	e.mu.Unlock()

	e.router.DispatchAll()
	return nil
}

// RequestDirection buffers d for the next tick. Requests outside a running game and
// reversals of the current direction are dropped silently.
func (e *Engine) RequestDirection(d Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning || d < DirRight || d > DirDown {
		return
	}
	if d == e.current.Opposite() {
		return
	}
	e.pending = d
}

// Tick advances the current game by one step; no-op unless running and not stopped
func (e *Engine) Tick() {
	e.mu.Lock()
	gen := e.generation
	e.mu.Unlock()
	e.tick(gen)
}

func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if gen != e.generation || e.halted || e.state != StateRunning {
		e.mu.Unlock()
		return
	}

	e.frame++
	e.current = e.pending
	next := e.snake.head().Add(e.current.Vector().Scale(e.cfg.CellSize))

	// Boundary before body: an off-board point has no cell index
	switch {
	case !e.cfg.Contains(next):
		e.endLocked(StateOver, CauseWall)
	case e.snake.occupies(next):
		e.endLocked(StateOver, CauseSelf)
	default:
		e.advanceLocked(next)
	}
	e.mu.Unlock()

	e.router.DispatchAll()
}

// advanceLocked moves the head to next, growing on food
func (e *Engine) advanceLocked(next Point) {
	e.snake.prepend(next)

	boardFull := false
	if e.food.Active && next == e.food.At {
		e.food.Active = false
		e.score += e.cfg.Reward
		e.push(EventScoreChanged, ScorePayload{Score: e.score, Delta: e.cfg.Reward})
		e.push(EventFoodEaten, FoodPayload{At: next, Length: e.snake.length()})
		log.Debugf("session %s frame %d: food at %v, score %d, length %d",
			e.session, e.frame, next, e.score, e.snake.length())

		if at, ok := e.placer.place(e.snake); ok {
			e.food = Food{At: at, Active: true}
		} else {
			boardFull = true
		}
	} else {
		e.snake.popTail()
	}

	e.push(EventRender, e.renderPayload())

	if boardFull {
		e.endLocked(StateWon, CauseBoardFull)
	}
}

// endLocked moves to a terminal state and cancels scheduling
func (e *Engine) endLocked(state GameState, cause Cause) {
	e.state = state
	if e.scheduler != nil {
		e.scheduler.Stop()
	}

	payload := GameOverPayload{
		Cause:  cause,
		Reason: cause.String(),
		Score:  e.score,
		Length: e.snake.length(),
	}
	if state == StateWon {
		e.push(EventBoardFull, payload)
	} else {
		e.push(EventGameOver, payload)
	}
	log.Infof("session %s ended at frame %d: %s, score %d, length %d",
		e.session, e.frame, cause, e.score, e.snake.length())
}

// Stop cancels scheduling and leaves the state as it is. Later ticks of the
// stopped game are ignored until the next Start.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.scheduler != nil {
		e.scheduler.Stop()
	}
	e.generation++
	wasTicking := e.state == StateRunning && !e.halted
	e.halted = true
	if wasTicking {
		e.push(EventStopped, nil)
		log.Infof("session %s stopped at frame %d", e.session, e.frame)
	}
	e.mu.Unlock()

	e.router.DispatchAll()
}

// State returns the lifecycle state
func (e *Engine) State() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Snapshot copies the current state
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		State:   e.state,
		Score:   e.score,
		Food:    e.food,
		Current: e.current,
		Pending: e.pending,
		Frame:   e.frame,
		Session: e.session,
		Config:  e.cfg,
	}
	if e.snake != nil {
		snap.Segments = e.snake.segments()
	}
	return snap
}

func (e *Engine) renderPayload() RenderPayload {
	return RenderPayload{
		Segments: e.snake.segments(),
		Food:     e.food.At,
		Active:   e.food.Active,
	}
}

func (e *Engine) push(t EventType, payload any) {
	e.queue.Push(GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     e.frame,
		Session:   e.session,
		Timestamp: e.timeProvider.Now(),
	})
}
