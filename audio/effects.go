package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/rocket/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
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

// NewOscillator creates a finite oscillator streaming duration worth of samples
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
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
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
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
	releaseStart   int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   max(total-rel, att),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if left := e.totalSamples - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero gain is silenced instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound generates the short square blip of the cannon
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.ShotSoundFrequency, constants.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundShot]*cfg.MasterVolume)
}

// CreateExplosionSound generates a noise burst over a low sine rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ExplosionSoundDuration

	// SineTone is endless, the envelope cuts it at d
	tone, err := generators.SineTone(rate, constants.ExplosionRumbleFrequency)
	if err != nil {
		tone = NewOscillator(constants.ExplosionRumbleFrequency, d, WaveSaw, rate)
	}

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)
	rumble := NewEnvelope(tone, d,
		constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundExplosion]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for the given sound, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	default:
		return nil
	}
}
