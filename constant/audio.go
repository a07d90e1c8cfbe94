package constant

import "time"

// Tone shaping for compare/swap feedback
const (
	DefaultSampleRate = 48000
	DefaultVolume     = 0.4

	// ToneDuration is shorter than a frame at 60 FPS so tones rarely overlap
	ToneDuration = 30 * time.Millisecond
	ToneAttack   = 2 * time.Millisecond
	ToneRelease  = 15 * time.Millisecond

	// Pitch range mapped from the smallest to the largest element
	ToneMinFreq = 120.0
	ToneMaxFreq = 1200.0

	// CompleteSweepDuration is the rising chord played when a run is sorted
	CompleteSweepDuration = 400 * time.Millisecond
)
