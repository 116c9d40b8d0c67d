package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/crystal-snake/constants"
)

// Scheduler drives Engine ticks at a fixed interval
type Scheduler interface {
	// Start begins calling tick every interval, replacing any previous schedule
	Start(tick func(), interval time.Duration)

	// Stop cancels the schedule; must be safe to call from inside tick
	Stop()
}

// ClockScheduler runs ticks on its own goroutine against a PausableClock.
// Deadlines advance by whole intervals so ticks do not drift; falling more than
// MaxTickLag intervals behind resynchronises instead of bursting.
type ClockScheduler struct {
	clock *PausableClock

	mu       sync.Mutex
	stopChan chan struct{} // Current run, nil when stopped
	wg       sync.WaitGroup

	tickCount atomic.Uint64
}

// NewClockScheduler creates a stopped scheduler over clock
func NewClockScheduler(clock *PausableClock) *ClockScheduler {
	return &ClockScheduler{clock: clock}
}

// Start begins a new run, superseding the current one
func (cs *ClockScheduler) Start(tick func(), interval time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.stopChan != nil {
		close(cs.stopChan)
	}
	stop := make(chan struct{})
	cs.stopChan = stop

	cs.wg.Add(1)
	go cs.schedulerLoop(tick, interval, stop)
}

// Stop halts the current run without waiting for its goroutine
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.stopChan != nil {
		close(cs.stopChan)
		cs.stopChan = nil
	}
}

// Wait blocks until every run's goroutine has exited; must not be called from tick
func (cs *ClockScheduler) Wait() {
	cs.wg.Wait()
}

// Running reports whether a run is active
func (cs *ClockScheduler) Running() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.stopChan != nil
}

// Pause freezes game time, suspending ticks
func (cs *ClockScheduler) Pause() {
	cs.clock.Pause()
}

// Resume unfreezes game time
func (cs *ClockScheduler) Resume() {
	cs.clock.Resume()
}

// TogglePause flips the pause state and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	if cs.clock.IsPaused() {
		cs.clock.Resume()
		return false
	}
	cs.clock.Pause()
	return true
}

// IsPaused returns the clock pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.clock.IsPaused()
}

// TickCount returns the number of ticks fired across all runs
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop(tick func(), interval time.Duration, stop <-chan struct{}) {
	defer cs.wg.Done()

	deadline := cs.clock.Now().Add(interval)
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			sleepDuration = interval * constants.PausedPollFactor
		} else {
			gameNow := cs.clock.Now()
			if !gameNow.Before(deadline) {
				select {
				case <-stop:
					return
				default:
				}

				tick()
				cs.tickCount.Add(1)

				deadline = deadline.Add(interval)
				if gameNow.Sub(deadline) > interval*constants.MaxTickLag {
					deadline = gameNow.Add(interval)
				}
			}

			sleepDuration = deadline.Sub(cs.clock.Now())
			if sleepDuration < 0 {
				sleepDuration = 0
			}
		}

		timer.Reset(sleepDuration)
		select {
		case <-stop:
			return
		case <-timer.C:
		}
	}
}
