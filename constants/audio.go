package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, bounds cue latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.5
)

// Shot Sound Timing
const (
	ShotSoundDuration = 70 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond

	// ShotSoundFrequency is the blip pitch (E5)
	ShotSoundFrequency = 659.25
)

// Explosion Sound Timing
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 380 * time.Millisecond

	// ExplosionRumbleFrequency is the low tone mixed under the noise burst
	ExplosionRumbleFrequency = 55.0
)
