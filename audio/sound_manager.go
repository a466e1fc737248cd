package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// bumpCooldown suppresses bump sounds fired in rapid succession
	bumpCooldown = 80 * time.Millisecond
)

// SoundManager plays game feedback sounds through one shared mixer.
// Every method is safe to call before Initialize or after Cleanup; they become no-ops.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastBump    time.Time

	// now is replaceable in tests
	now func() time.Time
}

// NewSoundManager creates a sound manager at the given volume [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		now:    time.Now,
	}
}

// Initialize opens the speaker. Fails on hosts without an audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// PlayBump plays the wall contact thud, rate limited by bumpCooldown
func (sm *SoundManager) PlayBump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastBump) < bumpCooldown {
		return
	}
	sm.lastBump = now

	sm.play(CreateBumpSound(sampleRate, sm.volume))
}

// PlayWin plays the win arpeggio
func (sm *SoundManager) PlayWin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.play(CreateWinSound(sampleRate, sm.volume))
}

// play adds s to the mixer; caller holds sm.mu
func (sm *SoundManager) play(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
