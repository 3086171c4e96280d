package audio

import (
	"testing"

	"github.com/lixenwraith/hitbox/collision"
	"github.com/lixenwraith/hitbox/config"
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
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s", st)
		}
	}
}

// TestFromConfig verifies runtime config mapping
func TestFromConfig(t *testing.T) {
	rc := config.Default()
	rc.AudioEnabled = true
	rc.MasterVolume = 0.25
	rc.SampleRate = 48000

	cfg := FromConfig(rc)
	if !cfg.Enabled || cfg.MasterVolume != 0.25 || cfg.SampleRate != 48000 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

// TestSoundManagerUninitialized verifies playback is a no-op before Initialize
func TestSoundManagerUninitialized(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false

	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected disabled init to succeed, got %v", err)
	}
	if sm.PlayCollision(collision.RectTag(collision.Red)) {
		t.Error("Expected no playback when disabled")
	}
	if sm.Play(nil) {
		t.Error("Expected nil streamer to be ignored")
	}
	sm.Cleanup()
}
