package audio

import "github.com/lixenwraith/sortviz/constant"

// Config holds tone playback settings
type Config struct {
	Enabled bool
	// Volume is the master gain, 0.0-1.0
	Volume     float64
	SampleRate int
}

// DefaultConfig returns audio enabled at the default volume and rate
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     constant.DefaultVolume,
		SampleRate: constant.DefaultSampleRate,
	}
}

func (c *Config) rate() int {
	if c.SampleRate <= 0 {
		return constant.DefaultSampleRate
	}
	return c.SampleRate
}
