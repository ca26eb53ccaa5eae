package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	// AudioBufferDuration is the speaker buffer; longer trades latency for fewer underruns
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue throttling
const (
	// AudioCueRate is the sustained cue budget per second
	AudioCueRate = 12.0
	// AudioCueBurst is how many cues may fire back to back above the rate
	AudioCueBurst = 4
	// AudioMasterVolume is the default linear gain
	AudioMasterVolume = 0.6
)

// Spawn Sound: two rising sine notes
const (
	SpawnSoundNoteDuration = 45 * time.Millisecond
	SpawnSoundAttack       = 4 * time.Millisecond
	SpawnSoundRelease      = 30 * time.Millisecond
	SpawnSoundFreqLow      = 660.0
	SpawnSoundFreqHigh     = 990.0
	SpawnSoundGain         = 0.5
)

// Contact Sound: square pop
const (
	ContactSoundDuration = 70 * time.Millisecond
	ContactSoundAttack   = 2 * time.Millisecond
	ContactSoundRelease  = 55 * time.Millisecond
	ContactSoundFreq     = 220.0
	ContactSoundGain     = 0.25
)

// Remove Sound: noise tick
const (
	RemoveSoundDuration = 40 * time.Millisecond
	RemoveSoundAttack   = 5 * time.Millisecond
	RemoveSoundRelease  = 30 * time.Millisecond
	RemoveSoundGain     = 0.15
)
