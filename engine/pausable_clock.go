package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	now       func() time.Time // Real time source
	epoch     time.Time        // Real time at creation
	paused    bool
	pausedAt  time.Time     // Real time the current pause started
	pausedFor time.Duration // Cumulative completed pause duration
}

// NewPausableClock creates a running clock on the system time
func NewPausableClock() *PausableClock {
	return newPausableClock(time.Now)
}

func newPausableClock(now func() time.Time) *PausableClock {
	return &PausableClock{now: now, epoch: now()}
}

// Now returns current game time: real elapsed time minus time spent paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.epoch.Add(pc.pausedAt.Sub(pc.epoch) - pc.pausedFor)
	}
	return pc.epoch.Add(pc.now().Sub(pc.epoch) - pc.pausedFor)
}

// Pause stops game time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		pc.paused = true
		pc.pausedAt = pc.now()
	}
}

// Resume continues game time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		pc.pausedFor += pc.now().Sub(pc.pausedAt)
		pc.paused = false
		pc.pausedAt = time.Time{}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedFor
	if pc.paused {
		total += pc.now().Sub(pc.pausedAt)
	}
	return total
}
