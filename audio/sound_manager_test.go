package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/crystal-snake/engine"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEat()
	sm.PlayGameOver()
	sm.PlayWin()
	sm.StopGameOver()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization fails without an audio device; the game runs silent then
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayEat()
	sm.PlayGameOver()
	sm.StopGameOver()
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}
}

// TestSoundManagerHandlesEngineEvents verifies event routing to sounds
func TestSoundManagerHandlesEngineEvents(t *testing.T) {
	sm := NewSoundManager(nil)

	sm.HandleEvent(engine.GameEvent{Type: engine.EventFoodEaten})
	sm.HandleEvent(engine.GameEvent{Type: engine.EventFoodEaten})
	sm.HandleEvent(engine.GameEvent{Type: engine.EventGameOver})
	sm.HandleEvent(engine.GameEvent{Type: engine.EventBoardFull})
	sm.HandleEvent(engine.GameEvent{Type: engine.EventRender})
	sm.HandleEvent(engine.GameEvent{Type: engine.EventStarted})

	if n := sm.Requests(SoundEat); n != 2 {
		t.Errorf("Expected 2 eat requests, got %d", n)
	}
	if n := sm.Requests(SoundGameOver); n != 1 {
		t.Errorf("Expected 1 gameover request, got %d", n)
	}
	if n := sm.Requests(SoundWin); n != 1 {
		t.Errorf("Expected 1 win request, got %d", n)
	}
	if n := sm.Requests(SoundType(42)); n != 0 {
		t.Errorf("Expected 0 for unknown sound, got %d", n)
	}
}

// TestSoundManagerSubscribesToEngine verifies registration with a running engine
func TestSoundManagerSubscribesToEngine(t *testing.T) {
	sm := NewSoundManager(nil)

	want := map[engine.EventType]bool{
		engine.EventFoodEaten: true,
		engine.EventGameOver:  true,
		engine.EventBoardFull: true,
		engine.EventStarted:   true,
	}
	types := sm.EventTypes()
	if len(types) != len(want) {
		t.Fatalf("Expected %d event types, got %v", len(want), types)
	}
	for _, et := range types {
		if !want[et] {
			t.Errorf("Unexpected event type %s", et)
		}
	}

	e := engine.NewEngine(nil, nil)
	e.RegisterEventHandler(sm)

	cfg := engine.ClassicConfig()
	cfg.InitialHead = engine.Point{}
	cfg.InitialDirection = engine.DirUp
	if err := e.Start(cfg); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	e.Tick()

	if n := sm.Requests(SoundGameOver); n != 1 {
		t.Errorf("Expected wall collision to request the gameover sound, got %d", n)
	}
}
