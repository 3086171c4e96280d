// Package config resolves runtime settings from defaults, an optional .env file and HITBOX_* variables
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the demo and headless tools
type Config struct {
	Debug  bool
	LogDir string

	// TickInterval is the frame period; the registry is cleared once per tick
	TickInterval time.Duration
	ScenePath    string

	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// Default returns settings for a ~60 FPS terminal session without audio
func Default() Config {
	return Config{
		LogDir:       "logs",
		TickInterval: 16 * time.Millisecond,
		AudioEnabled: false,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// Load reads .env files (missing files are ignored) then applies environment overrides
func Load(envFiles ...string) Config {
	// godotenv never overrides variables already set in the process environment
	_ = godotenv.Load(envFiles...)
	return FromEnv(Default())
}

// FromEnv applies HITBOX_* overrides on top of cfg; malformed values are ignored
func FromEnv(cfg Config) Config {
	if v := os.Getenv("HITBOX_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}

	if v := os.Getenv("HITBOX_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}

	if v := os.Getenv("HITBOX_TICK_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TickInterval = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("HITBOX_SCENE"); v != "" {
		cfg.ScenePath = v
	}

	if v := os.Getenv("HITBOX_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AudioEnabled = b
		}
	}

	// Master volume is given as 0-100
	if v := os.Getenv("HITBOX_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}

	if v := os.Getenv("HITBOX_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}

	return cfg
}
