package audio

import (
	"errors"

	"github.com/lixenwraith/rocket/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Cannon fired
	SoundExplosion                  // Debris destroyed
	soundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// AudioConfig holds volume and output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.6,
			SoundExplosion: 1.0,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// Sentinel errors
var (
	ErrSpeakerInit = errors.New("audio speaker unavailable")
)
