package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rocket/constants"
)

// SoundManager plays the game cues through the system speaker.
// Without a speaker every cue falls back to the terminal bell when one is set
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	fallback    func()
	initialized bool
}

// NewSoundManager creates a sound manager; fallback may be nil
func NewSoundManager(cfg *AudioConfig, fallback func()) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config:   cfg,
		mixer:    &beep.Mixer{},
		fallback: fallback,
	}
}

// Initialize opens the speaker. A failure leaves the manager on its fallback
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether cues go to the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayShot plays the cannon cue
func (sm *SoundManager) PlayShot() {
	sm.play(SoundShot)
}

// PlayExplosion plays the debris explosion cue
func (sm *SoundManager) PlayExplosion() {
	sm.play(SoundExplosion)
}

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.config.Enabled {
		return
	}

	if !sm.initialized {
		if sm.fallback != nil {
			sm.fallback()
		}
		return
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return
	}
	// The mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
