package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeManager returns a manager whose speaker calls are recorded instead of executed
func newFakeManager(cfg *Config, initErr error) (*SoundManager, *int) {
	sm := NewSoundManager(cfg)
	plays := 0
	sm.init = func(beep.SampleRate, int) error { return initErr }
	sm.play = func(...beep.Streamer) { plays++ }
	return sm, &plays
}

// TestSoundManagerGracefulDegradation verifies cues are dropped, not panicking, before initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	assert.NotPanics(t, func() {
		assert.False(t, sm.PlaySpawn())
		assert.False(t, sm.PlayContact())
		assert.False(t, sm.PlayRemove())
		sm.Cleanup()
	})
	assert.False(t, sm.initialized)
}

func TestSoundManagerInitialize(t *testing.T) {
	sm, plays := newFakeManager(nil, nil)

	require.NoError(t, sm.Initialize())
	assert.True(t, sm.initialized)
	assert.Equal(t, 1, *plays, "mixer attached once")

	// Second initialization is a no-op
	require.NoError(t, sm.Initialize())
	assert.Equal(t, 1, *plays)

	sm.Cleanup()
	assert.False(t, sm.initialized)
}

func TestSoundManagerInitFailure(t *testing.T) {
	sm, _ := newFakeManager(nil, errors.New("no device"))

	err := sm.Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init speaker")
	assert.Contains(t, err.Error(), "no device")
	assert.False(t, sm.initialized)
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm, plays := newFakeManager(cfg, nil)

	assert.Error(t, sm.Initialize())
	assert.Zero(t, *plays)
}

func TestSoundManagerRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CueRate = 0.001
	cfg.CueBurst = 3
	sm, _ := newFakeManager(cfg, nil)
	require.NoError(t, sm.Initialize())

	accepted := 0
	for i := 0; i < 10; i++ {
		if sm.PlayContact() {
			accepted++
		}
	}
	assert.Equal(t, 3, accepted)
	assert.Equal(t, 3, sm.mixer.Len())
}

func TestSoundManagerMute(t *testing.T) {
	sm, _ := newFakeManager(nil, nil)
	require.NoError(t, sm.Initialize())

	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())
	assert.False(t, sm.PlaySpawn())

	assert.False(t, sm.ToggleMute())
	assert.False(t, sm.Muted())
	assert.True(t, sm.PlaySpawn())
	assert.True(t, sm.PlayRemove())
}

func TestSoundManagerSatisfiesPlayer(t *testing.T) {
	var p Player = NewSoundManager(nil)
	assert.False(t, p.Muted())
	assert.False(t, p.PlayContact(), "uninitialized manager drops cues")
}
