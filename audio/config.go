package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "ROCKET_AUDIO_ENABLED"
	EnvMasterVolume = "ROCKET_MASTER_VOLUME"
	EnvSFXVolumes   = "ROCKET_SFX_VOLUMES"
	EnvSampleRate   = "ROCKET_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables.
// Malformed values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// JSON object keyed by sound name, e.g. {"shot":0.3}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
