// Package audio plays short tones for compare/swap activity and a chime on
// completion, mixing through the beep speaker
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sortviz/constant"
)

// maxVoices bounds concurrently mixed tones; extra tones are dropped
const maxVoices = 8

// Player manages speaker output
// All methods are safe without a device: until Initialize succeeds they do nothing
type Player struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	initialized bool

	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer creates a player; a nil config uses DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Initialize opens the speaker and starts the mixer
// Disabled players skip the device entirely
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.config.rate())
	if err := speaker.Init(rate, rate.N(constant.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences all voices
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; a cleared mixer leaves nothing playing
	p.initialized = false
}

// PlayTone queues a blip pitched by value relative to top
// Returns false when the tone was not queued
func (p *Player) PlayTone(value, top int) bool {
	return p.play(func(cfg *Config) beep.Streamer { return CreateTone(cfg, value, top) })
}

// PlayComplete queues the completion arpeggio
func (p *Player) PlayComplete() bool {
	return p.play(CreateCompleteSound)
}

func (p *Player) play(create func(*Config) beep.Streamer) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted.Load() {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()

	if p.mixer.Len() >= maxVoices {
		p.dropped.Add(1)
		return false
	}
	p.mixer.Add(create(p.config))
	p.played.Add(1)
	return true
}

// ToggleMute flips mute state, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsEnabled returns true when the device is open and unmuted
func (p *Player) IsEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted.Load()
}

// Stats returns played and dropped tone counts
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}
