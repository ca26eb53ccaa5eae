package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns all samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		samples := drain(osc)
		assert.Len(t, samples, rate.N(100*time.Millisecond), "wave %d", wave)
		for _, s := range samples {
			require.LessOrEqual(t, math.Abs(s[0]), 1.0)
			require.Equal(t, s[0], s[1])
		}
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(1000, 10*time.Millisecond, WaveSquare, rate)
	for _, s := range drain(osc) {
		assert.Contains(t, []float64{1, -1}, s[0])
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(env)
	require.Len(t, samples, 100)

	// Zero-frequency square is a constant 1, so samples expose the envelope directly
	assert.Equal(t, 0.0, samples[0][0])
	assert.InDelta(t, 0.5, samples[5][0], 1e-9)
	assert.Equal(t, 1.0, samples[50][0])
	assert.InDelta(t, 0.5, samples[90][0], 1e-9)
	assert.InDelta(t, 0.05, samples[99][0], 1e-9)
}

func TestSoundEffects(t *testing.T) {
	cfg := DefaultConfig()

	for _, st := range []SoundType{SoundSpawn, SoundContact, SoundRemove} {
		s := GetSoundEffect(st, cfg)
		require.NotNil(t, s, st.String())
		samples := drain(s)
		assert.NotEmpty(t, samples, st.String())
	}

	assert.Nil(t, GetSoundEffect(SoundType(42), cfg))
	assert.Equal(t, "unknown", SoundType(42).String())
}

func TestVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 10*time.Millisecond, WaveSquare, rate)
	for _, s := range drain(newVolume(osc, 0)) {
		assert.Zero(t, s[0])
	}
}
