package constants

import "time"

// Eat Sound Timing (two-note chime)
const (
	EatSoundNote1Duration = 70 * time.Millisecond
	EatSoundNote2Duration = 220 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 35 * time.Millisecond
	EatSoundNote2Release  = 160 * time.Millisecond
)

// Game Over Sound Timing (descending saw steps)
const (
	GameOverStepDuration = 180 * time.Millisecond
	GameOverSoundAttack  = 5 * time.Millisecond
	GameOverSoundRelease = 90 * time.Millisecond
)

// Win Sound Timing (rising arpeggio)
const (
	WinStepDuration = 120 * time.Millisecond
	WinSoundAttack  = 5 * time.Millisecond
	WinSoundRelease = 60 * time.Millisecond
)

// Speaker
const (
	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultSampleRate is used when no override is configured
	DefaultSampleRate = 44100
)
