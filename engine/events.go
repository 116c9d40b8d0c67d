// Package engine implements the snake game loop and its signalling.
//
// Event System
//
// The engine never calls into the presentation layer. Every observable change is pushed
// as a GameEvent to an EventQueue while the engine lock is held, and the queue is drained
// through an EventRouter after the lock is released, so handlers may read the engine
// (Snapshot) or issue commands (Start, Stop) without deadlocking.
//
// Event Flow:
//  1. Engine operation pushes events: e.push(EventRender, payload)
//  2. Events are stored in a mutex-guarded ring buffer (capacity: 256 events)
//  3. After unlocking, the router consumes the queue and calls handlers in FIFO order
//
// Consumers:
//   - render: EventRender, EventScoreChanged, EventGameOver, EventBoardFull
//   - audio: EventFoodEaten, EventGameOver, EventBoardFull, EventStarted
//   - network: all events, forwarded as JSON
package engine

import (
	"sync"
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventStarted signals a new game. Payload: nil
	EventStarted EventType = iota

	// EventRender carries the board to draw after a tick. Payload: RenderPayload
	EventRender

	// EventScoreChanged carries the new score. Payload: ScorePayload
	EventScoreChanged

	// EventFoodEaten signals that the head reached the food. Payload: FoodPayload
	EventFoodEaten

	// EventGameOver signals a wall or self collision. Payload: GameOverPayload
	EventGameOver

	// EventBoardFull signals that no free cell is left for food, a win. Payload: GameOverPayload
	EventBoardFull

	// EventStopped signals an explicit abort of a running game. Payload: nil
	EventStopped
)

// AllEventTypes lists every event type, for handlers that want everything
var AllEventTypes = []EventType{
	EventStarted, EventRender, EventScoreChanged, EventFoodEaten,
	EventGameOver, EventBoardFull, EventStopped,
}

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "Started"
	case EventRender:
		return "Render"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventFoodEaten:
		return "FoodEaten"
	case EventGameOver:
		return "GameOver"
	case EventBoardFull:
		return "BoardFull"
	case EventStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// RenderPayload is the board state to draw
type RenderPayload struct {
	Segments []Point `json:"segments"` // Head first
	Food     Point   `json:"food"`
	Active   bool    `json:"active"`
}

// ScorePayload carries the running score
type ScorePayload struct {
	Score int `json:"score"`
	Delta int `json:"delta"`
}

// FoodPayload describes a consumed food
type FoodPayload struct {
	At     Point `json:"at"`
	Length int   `json:"length"` // Snake length after growth
}

// GameOverPayload describes how a game ended
type GameOverPayload struct {
	Cause  Cause  `json:"-"`
	Reason string `json:"cause"`
	Score  int    `json:"score"`
	Length int    `json:"length"`
}

// GameEvent represents a single game event with associated metadata.
// Events are immutable once created; handlers must not modify payload slices.
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64  // Tick count when the event was created
	Session   string // Game session the event belongs to
	Timestamp time.Time
}

const eventQueueSize = 256

// EventQueue is a bounded ring buffer for game events.
//
// Thread-Safety:
//   - Push, Consume, Peek and Len are serialised on one mutex, so a consumer never
//     observes a slot that a producer has reserved but not yet written
//   - Consume: one logical consumer (EventRouter serialises its callers)
//
// When full, the oldest events are overwritten.
type EventQueue struct {
	mu     sync.Mutex
	events [eventQueueSize]GameEvent
	head   uint64 // Next position to read
	tail   uint64 // Next position to write
}

// NewEventQueue creates an empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event to the queue
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail%eventQueueSize] = event
	eq.tail++

	// Advance head past overwritten slots
	if eq.tail-eq.head > eventQueueSize {
		eq.head = eq.tail - eventQueueSize
	}
}

// Consume returns all pending events in FIFO order and marks them consumed
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	result := eq.snapshot(eq.head, eq.tail)
	eq.head = eq.tail
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.snapshot(eq.head, eq.tail)
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}

// snapshot copies slots [head, tail); callers hold eq.mu
func (eq *EventQueue) snapshot(head, tail uint64) []GameEvent {
	available := tail - head
	if available == 0 {
		return nil
	}
	if available > eventQueueSize {
		available = eventQueueSize
		head = tail - eventQueueSize
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(head+i)%eventQueueSize]
	}
	return result
}
