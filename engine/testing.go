package engine

import (
	"sync"
	"time"
)

// ManualScheduler is a Scheduler for tests: it records the schedule and fires ticks
// only when asked
type ManualScheduler struct {
	mu       sync.Mutex
	tick     func()
	interval time.Duration
	starts   int
	stops    int
}

// NewManualScheduler creates an unarmed scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Start(tick func(), interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tick = tick
	m.interval = interval
	m.starts++
}

func (m *ManualScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tick = nil
	m.stops++
}

// Fire runs the scheduled tick once; returns false when nothing is scheduled
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	tick := m.tick
	m.mu.Unlock()

	if tick == nil {
		return false
	}
	tick()
	return true
}

// FireN fires up to n ticks, stopping early once the schedule is cancelled
func (m *ManualScheduler) FireN(n int) int {
	fired := 0
	for fired < n && m.Fire() {
		fired++
	}
	return fired
}

// Armed reports whether a tick is scheduled
func (m *ManualScheduler) Armed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick != nil
}

// Interval returns the last requested interval
func (m *ManualScheduler) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

// Counts returns how many times Start and Stop were called
func (m *ManualScheduler) Counts() (starts, stops int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts, m.stops
}
