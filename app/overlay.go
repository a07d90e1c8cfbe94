package app

import (
	"fmt"

	"github.com/lixenwraith/sortviz/algorithm"
)

const completeAlert = "SORT COMPLETE!"
const exhaustedAlert = "GAVE UP: SHUFFLE LIMIT REACHED"

// overlayLines builds the debug menu: run header, live metrics, then key help
func (a *App) overlayLines() []string {
	w, h := a.renderer.Size()
	meta := a.ctrl.Metadata()

	lines := []string{
		fmt.Sprintf("%dx%d", w, h),
		fmt.Sprintf("FPS: %d", uint32(a.timer.FPS())),
		fmt.Sprintf("Sorting Algorithm: %s Sort", meta.Name),
		fmt.Sprintf("Big O Runtime: %s", meta.Complexity),
		"",
	}
	lines = append(lines, a.metrics.Lines()...)
	lines = append(lines, "", "O -> Show Debug Menu", "P -> Hide Debug Menu", "")

	for _, m := range a.ctrl.Catalog().Entries() {
		lines = append(lines, m.Label())
	}

	return append(lines,
		"N -> New Shuffle",
		"Space -> Pause",
		"+/- -> Speed",
		"U -> Mute",
		"X -> Quit",
	)
}

// speedLabel describes the step cadence for the overlay
func speedLabel(stepsPerSecond float64, paused bool) string {
	switch {
	case paused:
		return "paused"
	case stepsPerSecond == 0:
		return "every frame"
	default:
		return fmt.Sprintf("%.0f/s", stepsPerSecond)
	}
}

// runLabel is the short algorithm tag published to metrics
func runLabel(id algorithm.ID, runID string) string {
	return fmt.Sprintf("%s %s", id, runID)
}
