package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sortviz/constant"
)

// Shape is the waveform of a blip
type Shape int

const (
	ShapeSine Shape = iota
	ShapeTriangle
)

// sample evaluates the waveform at phase in [0, 1)
func (s Shape) sample(phase float64) float64 {
	if s == ShapeTriangle {
		return 4*math.Abs(phase-0.5) - 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// blip is one short note with a linear fade in and fade out
// It ends after length samples, so a step sound never outlives its frame by much
type blip struct {
	shape  Shape
	inc    float64
	phase  float64
	pos    int
	length int
	in     int
	out    int
}

func newBlip(freq float64, length, fadeIn, fadeOut time.Duration, shape Shape, rate beep.SampleRate) *blip {
	n := rate.N(length)
	return &blip{
		shape:  shape,
		inc:    freq / float64(rate),
		length: n,
		in:     min(rate.N(fadeIn), n),
		out:    min(rate.N(fadeOut), n),
	}
}

// level is the fade multiplier at the current position
func (b *blip) level() float64 {
	lv := 1.0
	if b.in > 0 && b.pos < b.in {
		lv = float64(b.pos) / float64(b.in)
	}
	if left := b.length - b.pos; b.out > 0 && left < b.out {
		lv = min(lv, float64(left)/float64(b.out))
	}
	return lv
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.length {
			return i, i > 0
		}
		v := b.shape.sample(b.phase) * b.level()
		samples[i] = [2]float64{v, v}

		b.phase += b.inc
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }

// withVolume scales s linearly; vol 0 is silence, 1 is unchanged
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(vol, 0) - 1}
}

// ToneFrequency maps value in [0, top] onto the tone pitch range
// Out-of-range values are clamped; top <= 0 yields the lowest pitch
func ToneFrequency(value, top int) float64 {
	if top <= 0 {
		return constant.ToneMinFreq
	}
	ratio := min(max(float64(value)/float64(top), 0), 1)
	return constant.ToneMinFreq + ratio*(constant.ToneMaxFreq-constant.ToneMinFreq)
}

// CreateTone generates the blip for one step; pitch follows the element value
func CreateTone(cfg *Config, value, top int) beep.Streamer {
	b := newBlip(ToneFrequency(value, top), constant.ToneDuration,
		constant.ToneAttack, constant.ToneRelease, ShapeTriangle, beep.SampleRate(cfg.rate()))
	return withVolume(b, cfg.Volume)
}

// chordC5 is the arpeggio played when a run ends sorted
var chordC5 = []float64{523.25, 659.25, 783.99}

// CreateCompleteSound generates a rising three-note arpeggio for a sorted run
func CreateCompleteSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())
	note := constant.CompleteSweepDuration / time.Duration(len(chordC5))

	notes := make([]beep.Streamer, 0, len(chordC5))
	for _, f := range chordC5 {
		notes = append(notes, newBlip(f, note, constant.ToneAttack, note/2, ShapeSine, rate))
	}
	return withVolume(beep.Seq(notes...), cfg.Volume)
}
