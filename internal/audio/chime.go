// Package audio plays the pickup chime. Audio is optional: when no output
// device can be opened every call is a silent no-op.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Chime shape: a short sine ping with a fast attack and exponential decay
const (
	ChimeFreq   = 880.0                  // Hz
	ChimePeak   = 0.12                   // Gain reached at the end of the attack
	ChimeFloor  = 0.001                  // Gain reached at the end of the decay
	ChimeAttack = 10 * time.Millisecond  // Linear ramp from silence to peak
	ChimeDecay  = 250 * time.Millisecond // Peak decays to floor by this time
	ChimeLength = 300 * time.Millisecond // The tone stops here
)

// Chimer plays a pickup sound.
type Chimer interface {
	Chime()
}

// Nop is a Chimer that plays nothing. Used when sound is muted and for
// remote sessions where the server's speaker is not the player's.
type Nop struct{}

// Chime does nothing.
func (Nop) Chime() {}

// SoundManager plays chimes through the default output device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close for the shared device, clearing is enough
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Chime plays one pickup ping. Overlapping chimes mix.
func (sm *SoundManager) Chime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewChimeGenerator(sampleRate))
	speaker.Unlock()
}

// ChimeGenerator streams a single chime and then ends.
type ChimeGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{
		sr:    sr,
		total: sr.N(ChimeLength),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := ChimeGain(t) * math.Sin(2*math.Pi*ChimeFreq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ChimeGain returns the envelope gain t seconds into the chime.
func ChimeGain(t float64) float64 {
	attack := ChimeAttack.Seconds()
	decay := ChimeDecay.Seconds()

	switch {
	case t <= 0:
		return 0
	case t < attack:
		return ChimePeak * t / attack
	case t < decay:
		// Exponential ramp from peak to floor
		frac := (t - attack) / (decay - attack)
		return ChimePeak * math.Pow(ChimeFloor/ChimePeak, frac)
	case t < ChimeLength.Seconds():
		return ChimeFloor
	default:
		return 0
	}
}
