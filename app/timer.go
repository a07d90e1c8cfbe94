package app

import (
	"time"

	"github.com/lixenwraith/sortviz/constant"
)

// FrameTimer measures frame-to-frame time and keeps a smoothed FPS
type FrameTimer struct {
	last   time.Time
	frames uint64
	fps    float64
}

// Tick ends the current frame at now and begins the next
func (t *FrameTimer) Tick(now time.Time) {
	t.frames++
	if t.last.IsZero() {
		t.last = now
		return
	}

	elapsed := now.Sub(t.last)
	t.last = now
	if elapsed <= 0 {
		return
	}

	instant := float64(time.Second) / float64(elapsed)
	if t.fps == 0 {
		t.fps = instant
		return
	}
	t.fps += constant.FPSSmoothing * (instant - t.fps)
}

// FPS returns the smoothed frames per second
func (t *FrameTimer) FPS() float64 {
	return t.fps
}

// Frames returns the number of ticks so far
func (t *FrameTimer) Frames() uint64 {
	return t.frames
}
