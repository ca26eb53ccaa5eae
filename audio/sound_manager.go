package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/particle-field/parameter"
)

// Player is the cue surface the engine depends on
type Player interface {
	PlaySpawn() bool
	PlayContact() bool
	PlayRemove() bool
	ToggleMute() bool
	Muted() bool
}

// SoundManager mixes short cues onto the speaker
// Cues beyond the configured rate are dropped rather than queued
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	limiter     *rate.Limiter
	initialized bool
	muted       bool

	// init is swapped in tests to avoid touching an audio device
	init func(beep.SampleRate, int) error
	play func(...beep.Streamer)
}

var _ Player = (*SoundManager)(nil)

// NewSoundManager creates an uninitialized manager; nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:     cfg,
		mixer:   &beep.Mixer{},
		limiter: rate.NewLimiter(rate.Limit(cfg.CueRate), max(cfg.CueBurst, 1)),
		init:    speaker.Init,
		play:    speaker.Play,
	}
}

// Initialize opens the speaker with a 100ms buffer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return errors.New("audio disabled")
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	sm.play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer; beep keeps the speaker open for the process lifetime
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

// Play queues a cue; returns false if dropped (uninitialized, muted, or over rate)
func (sm *SoundManager) Play(s SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if !sm.limiter.Allow() {
		return false
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

func (sm *SoundManager) PlaySpawn() bool   { return sm.Play(SoundSpawn) }
func (sm *SoundManager) PlayContact() bool { return sm.Play(SoundContact) }
func (sm *SoundManager) PlayRemove() bool  { return sm.Play(SoundRemove) }

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
