package audio

import "github.com/lixenwraith/particle-field/parameter"

// Config controls audio output and cue throttling
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	// CueRate is the sustained number of cues per second; CueBurst the allowed burst above it
	CueRate  float64
	CueBurst int
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		CueRate:      parameter.AudioCueRate,
		CueBurst:     parameter.AudioCueBurst,
	}
}
