package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	expectedVolumes := map[SoundType]float64{
		SoundEat:      1.0,
		SoundGameOver: 0.8,
		SoundWin:      0.7,
	}
	for soundType, expectedVol := range expectedVolumes {
		if vol, ok := cfg.EffectVolumes[soundType]; !ok {
			t.Errorf("Expected volume for sound type %s to be set", soundType)
		} else if vol != expectedVol {
			t.Errorf("Expected volume %f for sound type %s, got %f", expectedVol, soundType, vol)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("SNAKE_AUDIO_ENABLED", "")
	t.Setenv("SNAKE_MASTER_VOLUME", "")
	t.Setenv("SNAKE_SFX_VOLUMES", "")
	t.Setenv("SNAKE_SAMPLE_RATE", "")

	cfg := LoadAudioConfig()
	defaultCfg := DefaultAudioConfig()

	if cfg.Enabled != defaultCfg.Enabled {
		t.Errorf("Expected Enabled=%v, got %v", defaultCfg.Enabled, cfg.Enabled)
	}
	if cfg.MasterVolume != defaultCfg.MasterVolume {
		t.Errorf("Expected MasterVolume=%f, got %f", defaultCfg.MasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != defaultCfg.SampleRate {
		t.Errorf("Expected SampleRate=%d, got %d", defaultCfg.SampleRate, cfg.SampleRate)
	}
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"maybe", true}, // unparseable keeps default
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SNAKE_AUDIO_ENABLED", tc.value)
			if cfg := LoadAudioConfig(); cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume verifies the 0-100 scale and clamping
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"75", 0.75},
		{"100", 1.0},
		{"150", 1.0},
		{"-20", 0.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SNAKE_MASTER_VOLUME", tc.value)
			if cfg := LoadAudioConfig(); cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigSampleRate verifies sample rate override and rejection of bad values
func TestLoadAudioConfigSampleRate(t *testing.T) {
	t.Setenv("SNAKE_SAMPLE_RATE", "48000")
	if cfg := LoadAudioConfig(); cfg.SampleRate != 48000 {
		t.Errorf("Expected SampleRate=48000, got %d", cfg.SampleRate)
	}

	for _, bad := range []string{"0", "-1", "fast"} {
		t.Setenv("SNAKE_SAMPLE_RATE", bad)
		if cfg := LoadAudioConfig(); cfg.SampleRate != 44100 {
			t.Errorf("Expected default SampleRate for %q, got %d", bad, cfg.SampleRate)
		}
	}
}

// TestLoadAudioConfigEffectVolumes verifies per-effect JSON overrides
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv("SNAKE_SFX_VOLUMES", `{"eat":0.25,"win":2,"unknown":0.1}`)
	cfg := LoadAudioConfig()

	if v := cfg.EffectVolumes[SoundEat]; v != 0.25 {
		t.Errorf("Expected eat volume 0.25, got %f", v)
	}
	if v := cfg.EffectVolumes[SoundWin]; v != 1.0 {
		t.Errorf("Expected win volume clamped to 1.0, got %f", v)
	}
	if v := cfg.EffectVolumes[SoundGameOver]; v != 0.8 {
		t.Errorf("Expected gameover volume unchanged at 0.8, got %f", v)
	}
}

// TestLoadAudioConfigEffectVolumesInvalid verifies malformed JSON keeps defaults
func TestLoadAudioConfigEffectVolumesInvalid(t *testing.T) {
	t.Setenv("SNAKE_SFX_VOLUMES", `{"eat":`)
	cfg := LoadAudioConfig()

	if v := cfg.EffectVolumes[SoundEat]; v != 1.0 {
		t.Errorf("Expected default eat volume on invalid JSON, got %f", v)
	}
}
