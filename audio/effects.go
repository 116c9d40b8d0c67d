package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/crystal-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped oscillator note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// CreateEatSound generates a two-note chime for food consumption
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5 then E6
	sequence := beep.Seq(
		tone(880.0, WaveSquare, constants.EatSoundNote1Duration, constants.EatSoundAttack, constants.EatSoundNote1Release, rate),
		tone(1318.51, WaveSquare, constants.EatSoundNote2Duration, constants.EatSoundAttack, constants.EatSoundNote2Release, rate),
	)

	return newVolume(sequence, 0.4*cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateGameOverSound generates a descending saw figure for a collision
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// G4 E4 C4 G3
	steps := []float64{392.00, 329.63, 261.63, 196.00}
	notes := make([]beep.Streamer, 0, len(steps))
	for _, f := range steps {
		notes = append(notes, tone(f, WaveSaw, constants.GameOverStepDuration,
			constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate))
	}

	return newVolume(beep.Seq(notes...), 0.5*cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}

// CreateWinSound generates a rising arpeggio with an octave overtone for a full board
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C5 E5 G5 C6
	steps := []float64{523.25, 659.25, 783.99, 1046.50}
	notes := make([]beep.Streamer, 0, len(steps))
	for _, f := range steps {
		d := constants.WinStepDuration
		notes = append(notes, beep.Mix(
			newVolume(tone(f, WaveSine, d, constants.WinSoundAttack, constants.WinSoundRelease, rate), 0.7),
			newVolume(tone(2*f, WaveSine, d, constants.WinSoundAttack, constants.WinSoundRelease, rate), 0.3),
		))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundWin]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
