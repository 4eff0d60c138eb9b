package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays ride feedback: a glide hum that follows speed, landing thumps and the crash
// Every method is a no-op until Initialize succeeds, so playback works without an audio device
type SoundManager struct {
	mu          sync.Mutex
	glide       *beep.Ctrl
	glideGen    *GlideGenerator
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.glide != nil {
		sm.glide.Paused = true
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.glide = nil
	sm.glideGen = nil
	sm.initialized = false
}

// SetGlide tunes the glide hum to a speed in track units per frame, 0 pauses it
func (sm *SoundManager) SetGlide(speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.glide == nil {
		sm.glideGen = NewGlideGenerator(sampleRate)
		sm.glide = &beep.Ctrl{Streamer: sm.glideGen}
		speaker.Lock()
		sm.mixer.Add(sm.glide)
		speaker.Unlock()
	}
	sm.glideGen.SetSpeed(speed)
	speaker.Lock()
	sm.glide.Paused = speed <= 0
	speaker.Unlock()
}

// PlayLanding plays a short low thump
func (sm *SoundManager) PlayLanding() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, 90)
	if err != nil {
		return
	}
	thump := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(time.Millisecond*80), sine),
		Base:     2,
		Volume:   -2,
	}
	speaker.Lock()
	sm.mixer.Add(thump)
	speaker.Unlock()
}

// PlayCrash plays the rider coming off the sled
func (sm *SoundManager) PlayCrash() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*400), NewCrashGenerator(sampleRate, time.Now().UnixNano()))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
