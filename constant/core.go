package constant

import "time"

// Frame loop timing
const (
	// DefaultFrameRate is the target redraw rate
	DefaultFrameRate = 120

	// EventQueueSize is the buffered capacity between the poller and the loop
	EventQueueSize = 256

	// FPSSmoothing weights the newest frame in the moving FPS average
	FPSSmoothing = 0.1
)

// Step cadence
const (
	// DefaultStepsPerSecond of zero means one step on every frame
	DefaultStepsPerSecond = 0

	// SpeedFactor scales steps-per-second on each faster/slower key press
	SpeedFactor = 2.0

	// MinStepsPerSecond is the floor reached by repeated slow-downs
	MinStepsPerSecond = 1.0
)

// Sequence sizing
const (
	// DefaultBars of zero sizes the sequence to the terminal width
	DefaultBars = 0

	// MaxBars caps the element count regardless of terminal width
	MaxBars = 4096

	// BarWidth is the number of terminal columns per bar
	BarWidth = 1
)

// Bogo
const (
	// DefaultBogoLimit of zero lets bogo shuffle forever in the shell
	DefaultBogoLimit = 0

	// BenchBogoLimit caps bogo shuffles per bench run
	BenchBogoLimit = 100000
)

// Debug log
const (
	LogDir      = "logs"
	LogFileName = "sortviz.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// SpeakerBuffer is the beep speaker buffer length
const SpeakerBuffer = 100 * time.Millisecond
