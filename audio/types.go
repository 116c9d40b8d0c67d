package audio

import (
	"errors"

	"github.com/lixenwraith/crystal-snake/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food consumed
	SoundGameOver                  // Wall or self collision
	SoundWin                       // Board full
	soundTypeCount
)

// String returns the name used in SNAKE_SFX_VOLUMES
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "gameover"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      1.0,
			SoundGameOver: 0.8,
			SoundWin:      0.7,
		},
		SampleRate: constants.DefaultSampleRate,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
