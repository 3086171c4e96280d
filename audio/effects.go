package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/hitbox/collision"
	"github.com/lixenwraith/hitbox/core"
)

// Cue timing
const (
	RectCueDuration = 90 * time.Millisecond
	RectCueAttack   = 5 * time.Millisecond
	RectCueRelease  = 40 * time.Millisecond

	CharCueDuration           = 400 * time.Millisecond
	CharCueAttack             = 5 * time.Millisecond
	CharCueFundamentalRelease = 350 * time.Millisecond
	CharCueOvertoneRelease    = 150 * time.Millisecond

	TextCueDuration = 30 * time.Millisecond
	TextCueAttack   = 2 * time.Millisecond
	TextCueRelease  = 15 * time.Millisecond
)

// rectBaseFreq is C4; each palette step raises the cue by one semitone
const rectBaseFreq = 261.63

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave; a collision cue is one oscillator per tone
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

// Stream ends on sample boundaries shorter than the mixer buffer: a partial fill reports ok
// with the filled count, and only the following call returns 0, false
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
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
// Cues are tens of milliseconds long, so without a release the cut-off clicks
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

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

	// Same end rule as oscillator: the envelope may be shorter than its source
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
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear-volume effect; master times per-cue volume lands here
// math.Log2(0) is -Inf, so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// RectFrequency returns the cue pitch for a colour: one semitone per palette step
func RectFrequency(c collision.RectColor) float64 {
	return rectBaseFreq * math.Pow(2, float64(c)/12)
}

// CreateRectSound generates a short square blip pitched by colour
func CreateRectSound(c collision.RectColor, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(RectFrequency(c), RectCueDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, RectCueDuration, RectCueAttack, RectCueRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundRect]*cfg.MasterVolume)
}

// CreateCharSound generates a bell ding for glyph pickups
func CreateCharSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, CharCueDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, CharCueDuration, CharCueAttack, CharCueFundamentalRelease, rate)

	// Octave overtone
	over := NewOscillator(1760.0, CharCueDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, CharCueDuration, CharCueAttack, CharCueOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundChar]*cfg.MasterVolume)
}

// CreateTextSound generates a noise tick for brushing past text
func CreateTextSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, TextCueDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, TextCueDuration, TextCueAttack, TextCueRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundText]*cfg.MasterVolume)
}

// CueFor picks the cue for a query result: the first colour in palette order wins,
// then glyphs, then text; nil when nothing collided
func CueFor(c collision.Collision, cfg *AudioConfig) beep.Streamer {
	for _, e := range core.Entries(c.IsColliding.Rect) {
		if e.Value {
			return CreateRectSound(e.Key, cfg)
		}
	}
	for _, v := range c.IsColliding.Char {
		if v {
			return CreateCharSound(cfg)
		}
	}
	for _, v := range c.IsColliding.Text {
		if v {
			return CreateTextSound(cfg)
		}
	}
	return nil
}
