package engine

import (
	"sync"
	"sync/atomic"
)

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event, called after the engine lock is released
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to EventHandler for the given types
func HandlerFunc(fn func(GameEvent), types ...EventType) EventHandler {
	return &funcHandler{fn: fn, types: types}
}

type funcHandler struct {
	fn    func(GameEvent)
	types []EventType
}

func (h *funcHandler) HandleEvent(event GameEvent) { h.fn(event) }
func (h *funcHandler) EventTypes() []EventType     { return h.types }

// EventRouter dispatches queued events to registered handlers.
// Handlers are invoked in registration order; one dispatch runs at a time.
type EventRouter struct {
	mu          sync.RWMutex
	dispatching atomic.Bool
	handlers    map[EventType][]EventHandler
	queue       *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers in FIFO order.
// A call made while another dispatch is active (including from inside a handler)
// returns at once; the active dispatcher drains whatever was pushed meanwhile.
func (r *EventRouter) DispatchAll() {
	for r.dispatching.CompareAndSwap(false, true) {
		for {
			events := r.queue.Consume()
			if len(events) == 0 {
				break
			}
			for _, ev := range events {
				r.mu.RLock()
				handlers := r.handlers[ev.Type]
				r.mu.RUnlock()

				for _, h := range handlers {
					h.HandleEvent(ev)
				}
			}
		}
		r.dispatching.Store(false)

		// Events pushed between the last Consume and the release are picked up here
		if r.queue.Len() == 0 {
			return
		}
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t EventType) bool {
	return r.HandlerCount(t) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}
