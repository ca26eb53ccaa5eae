package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/particle-field/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType identifies a cue
type SoundType int

const (
	SoundSpawn SoundType = iota
	SoundContact
	SoundRemove
)

func (s SoundType) String() string {
	switch s {
	case SoundSpawn:
		return "spawn"
	case SoundContact:
		return "contact"
	case SoundRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release amplitude ramp
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps linear gain onto beep's log volume, 0 meaning silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSpawnSound is a rising two-note chirp for a click burst
func CreateSpawnSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.SpawnSoundFreqLow, parameter.SpawnSoundNoteDuration, WaveSine, rate)
	n2 := NewOscillator(parameter.SpawnSoundFreqHigh, parameter.SpawnSoundNoteDuration, WaveSine, rate)
	seq := beep.Seq(
		NewEnvelope(n1, parameter.SpawnSoundNoteDuration, parameter.SpawnSoundAttack, parameter.SpawnSoundRelease, rate),
		NewEnvelope(n2, parameter.SpawnSoundNoteDuration, parameter.SpawnSoundAttack, parameter.SpawnSoundRelease, rate),
	)
	return newVolume(seq, parameter.SpawnSoundGain*cfg.MasterVolume)
}

// CreateContactSound is a short square pop for direct pointer contact
func CreateContactSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.ContactSoundFreq, parameter.ContactSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ContactSoundDuration, parameter.ContactSoundAttack, parameter.ContactSoundRelease, rate)
	return newVolume(shaped, parameter.ContactSoundGain*cfg.MasterVolume)
}

// CreateRemoveSound is a soft noise tick when a resting particle is culled
func CreateRemoveSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.RemoveSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.RemoveSoundDuration, parameter.RemoveSoundAttack, parameter.RemoveSoundRelease, rate)
	return newVolume(shaped, parameter.RemoveSoundGain*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a cue, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundSpawn:
		return CreateSpawnSound(cfg)
	case SoundContact:
		return CreateContactSound(cfg)
	case SoundRemove:
		return CreateRemoveSound(cfg)
	default:
		return nil
	}
}
