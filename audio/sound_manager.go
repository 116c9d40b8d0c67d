package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/crystal-snake/constants"
	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("audio")

// SoundManager plays game sound effects through the beep speaker.
// Every method is a no-op until Initialize succeeds, so the game runs silent
// on machines without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	gameOver    *beep.Ctrl // Rewound when a new game starts
	win         *beep.Ctrl
	initialized bool

	requests [soundTypeCount]atomic.Uint64
}

// NewSoundManager creates a sound manager for cfg; nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(constants.SpeakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Infof("speaker initialised at %d Hz, master volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Initialized reports whether sounds will be heard
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.gameOver = nil
	sm.win = nil

	// beep has no speaker close; an empty mixer keeps the device quiet
	speaker.Clear()
	sm.initialized = false
}

// PlayEat plays the food chime; overlapping chimes mix
func (sm *SoundManager) PlayEat() {
	sm.play(SoundEat)
}

// PlayGameOver plays the collision figure, restarting it if already playing
func (sm *SoundManager) PlayGameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.requests[SoundGameOver].Add(1)
	if !sm.initialized {
		return
	}
	sm.gameOver = sm.replaceLocked(sm.gameOver, SoundGameOver)
}

// PlayWin plays the full-board arpeggio
func (sm *SoundManager) PlayWin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.requests[SoundWin].Add(1)
	if !sm.initialized {
		return
	}
	sm.win = sm.replaceLocked(sm.win, SoundWin)
}

// StopGameOver silences end-of-game sounds still playing
func (sm *SoundManager) StopGameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range []*beep.Ctrl{sm.gameOver, sm.win} {
		if ctrl != nil {
			// A nil streamer reads as drained and the mixer drops it
			ctrl.Streamer = nil
		}
	}
	speaker.Unlock()
	sm.gameOver = nil
	sm.win = nil
}

// Requests returns how many times st was asked for, heard or not
func (sm *SoundManager) Requests(st SoundType) uint64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.requests[st].Load()
}

// HandleEvent implements engine.EventHandler
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventFoodEaten:
		sm.PlayEat()
	case engine.EventGameOver:
		sm.PlayGameOver()
	case engine.EventBoardFull:
		sm.PlayWin()
	case engine.EventStarted:
		sm.StopGameOver()
	}
}

// EventTypes implements engine.EventHandler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventFoodEaten,
		engine.EventGameOver,
		engine.EventBoardFull,
		engine.EventStarted,
	}
}

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.requests[st].Add(1)
	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// replaceLocked drops prev from the mixer and starts a fresh st behind a Ctrl
func (sm *SoundManager) replaceLocked(prev *beep.Ctrl, st SoundType) *beep.Ctrl {
	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return prev
	}
	ctrl := &beep.Ctrl{Streamer: streamer}

	speaker.Lock()
	if prev != nil {
		prev.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	return ctrl
}
