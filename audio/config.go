package audio

import (
	"github.com/lixenwraith/hitbox/config"
)

// AudioConfig holds cue synthesis and playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at half master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundRect: 0.8,
			SoundChar: 1.0,
			SoundText: 0.6,
		},
	}
}

// FromConfig derives audio settings from the runtime config
func FromConfig(cfg config.Config) *AudioConfig {
	ac := DefaultAudioConfig()
	ac.Enabled = cfg.AudioEnabled
	ac.MasterVolume = cfg.MasterVolume
	if cfg.SampleRate > 0 {
		ac.SampleRate = cfg.SampleRate
	}
	return ac
}
