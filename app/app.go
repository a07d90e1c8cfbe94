// Package app runs the interactive visualizer: key events in, one frame per tick out
package app

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/sortviz/audio"
	"github.com/lixenwraith/sortviz/config"
	"github.com/lixenwraith/sortviz/constant"
	"github.com/lixenwraith/sortviz/engine"
	"github.com/lixenwraith/sortviz/input"
	"github.com/lixenwraith/sortviz/render"
	"github.com/lixenwraith/sortviz/session"
	"github.com/lixenwraith/sortviz/status"
)

// App owns the screen, the session and the step cadence
// HandleEvent and Frame must be called from one goroutine
type App struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	ctrl     *session.Controller
	palette  *render.Palette
	keys     *input.KeyTable
	player   *audio.Player
	limiter  *rate.Limiter
	timer    FrameTimer
	metrics  *status.Registry

	frameRate      int
	fitWidth       bool
	stepsPerSecond float64
	stepRate       float64
	showDebug      bool
	paused         bool

	// per-run state, reset by onNewRun
	top       int
	announced bool

	mElements, mSteps, mCompares, mSwaps, mWrites *atomic.Int64
	mStepRate                                     *status.AtomicFloat
	mRun, mStatus, mSpeed, mProgress              *status.AtomicString
}

// New builds an App over an initialized screen
// player may be nil for a silent session
func New(screen tcell.Screen, cfg *config.Config, player *audio.Player) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alg, err := cfg.AlgorithmID()
	if err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	renderer := render.NewTerminalRenderer(screen)
	w, _ := renderer.Size()

	a := &App{
		screen:         screen,
		renderer:       renderer,
		palette:        render.NewPalette(0),
		keys:           input.DefaultKeyTable(catalog),
		player:         player,
		metrics:        status.NewRegistry(),
		frameRate:      cfg.FrameRate,
		fitWidth:       cfg.Bars == 0,
		stepsPerSecond: cfg.StepsPerSecond,
		showDebug:      cfg.ShowDebug,
	}
	a.cacheMetrics()
	a.limiter = rate.NewLimiter(a.limit(), a.burst())

	size := cfg.Bars
	if a.fitWidth {
		size = render.BarCapacity(w)
	}

	a.ctrl, err = session.New(session.Config{
		Size:      size,
		Algorithm: alg,
		Seed:      cfg.Seed,
		BogoLimit: cfg.BogoLimit,
		Catalog:   catalog,
	}, session.WithRunHook(a.onNewRun))
	if err != nil {
		return nil, err
	}
	a.mSpeed.Store(speedLabel(a.stepsPerSecond, a.paused))
	return a, nil
}

func (a *App) cacheMetrics() {
	a.mElements = a.metrics.Ints.Get("elements")
	a.mSteps = a.metrics.Ints.Get("steps")
	a.mCompares = a.metrics.Ints.Get("comparisons")
	a.mSwaps = a.metrics.Ints.Get("swaps")
	a.mWrites = a.metrics.Ints.Get("writes")
	a.mStepRate = a.metrics.Floats.Get("steps/s")
	a.mRun = a.metrics.Strings.Get("run")
	a.mStatus = a.metrics.Strings.Get("status")
	a.mSpeed = a.metrics.Strings.Get("speed")
	a.mProgress = a.metrics.Strings.Get("progress")
}

func (a *App) onNewRun(runID string, run *engine.Run) {
	seq := run.Sequence()
	a.palette.Reset(seq.Len())
	a.top = seq.Max()
	a.announced = false
	a.mRun.Store(runLabel(run.Algorithm(), runID))
}

// limit maps the configured cadence onto the limiter; zero is one step per frame
func (a *App) limit() rate.Limit {
	if a.stepsPerSecond <= 0 {
		return rate.Inf
	}
	return rate.Limit(a.stepsPerSecond)
}

// burst is the most steps one frame may take to keep up with the cadence
func (a *App) burst() int {
	if a.stepsPerSecond <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(a.stepsPerSecond/float64(a.frameRate))))
}

func (a *App) setSpeed(sps float64) {
	a.stepsPerSecond = sps
	a.limiter.SetLimit(a.limit())
	a.limiter.SetBurst(a.burst())
	a.mSpeed.Store(speedLabel(a.stepsPerSecond, a.paused))
	log.Printf("app: steps per second %s", speedLabel(a.stepsPerSecond, false))
}

// HandleEvent applies one terminal event, returns false when the user quits
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.renderer.Resize(w, h)
		a.screen.Sync()
		if a.fitWidth {
			if n := render.BarCapacity(w); n != a.ctrl.Size() {
				a.ctrl.Resize(n)
			}
		}

	case *tcell.EventKey:
		intent := a.keys.Resolve(ev)
		switch intent.Type {
		case input.IntentQuit:
			return false
		case input.IntentSelect:
			if err := a.ctrl.Select(intent.Algorithm); err != nil {
				log.Printf("app: %v", err)
			}
		case input.IntentReset:
			a.ctrl.Reset()
		case input.IntentShowDebug:
			a.showDebug = true
		case input.IntentHideDebug:
			a.showDebug = false
		case input.IntentPause:
			a.paused = !a.paused
			a.mSpeed.Store(speedLabel(a.stepsPerSecond, a.paused))
		case input.IntentFaster:
			if a.stepsPerSecond == 0 {
				a.setSpeed(float64(a.frameRate) * constant.SpeedFactor)
			} else {
				a.setSpeed(a.stepsPerSecond * constant.SpeedFactor)
			}
		case input.IntentSlower:
			if a.stepsPerSecond == 0 {
				a.setSpeed(max(float64(a.frameRate)/constant.SpeedFactor, constant.MinStepsPerSecond))
			} else {
				a.setSpeed(max(a.stepsPerSecond/constant.SpeedFactor, constant.MinStepsPerSecond))
			}
		case input.IntentToggleMute:
			if a.player != nil {
				on := a.player.ToggleMute()
				log.Printf("app: sound on=%t", on)
			}
		}
	}
	return true
}

// Frame advances the run by as many steps as the cadence allows at now, then draws
func (a *App) Frame(now time.Time) {
	a.timer.Tick(now)

	steps := 0
	var last engine.StepResult
	if !a.paused && !a.ctrl.Run().Status().Terminal() {
		for steps < a.limiter.Burst() && a.limiter.AllowN(now, 1) {
			last = a.ctrl.Step()
			a.palette.Apply(last)
			steps++
			if last.Status.Terminal() {
				break
			}
		}
	}
	if steps > 0 {
		a.sound(last)
	}

	a.stepRate += constant.FPSSmoothing * (float64(steps)*a.timer.FPS() - a.stepRate)
	a.publish()

	frame := render.Frame{
		Sequence: a.ctrl.Run().Sequence(),
		Palette:  a.palette,
	}
	if a.showDebug {
		frame.Overlay = a.overlayLines()
		frame.Alert = a.alert()
	}
	a.renderer.RenderFrame(frame)
}

// sound plays one tone for the frame's last step, or the chime once per sorted run
func (a *App) sound(res engine.StepResult) {
	if a.player == nil {
		return
	}
	if res.Status == engine.StatusSorted {
		if !a.announced {
			a.player.PlayComplete()
			a.announced = true
		}
		return
	}

	seq := a.ctrl.Run().Sequence()
	switch {
	case res.HasSwap():
		a.player.PlayTone(seq.At(res.Swapped.J), a.top)
	case res.HasWrite():
		a.player.PlayTone(seq.At(res.Written), a.top)
	case res.HasCompare():
		a.player.PlayTone(seq.At(res.Compared.I), a.top)
	case res.HasRead():
		a.player.PlayTone(seq.At(res.Read), a.top)
	}
}

func (a *App) alert() string {
	switch a.ctrl.Run().Status() {
	case engine.StatusSorted:
		return completeAlert
	case engine.StatusExhausted:
		return exhaustedAlert
	}
	return ""
}

func (a *App) publish() {
	run := a.ctrl.Run()
	st := run.Stats()
	a.mElements.Store(int64(run.Sequence().Len()))
	a.mSteps.Store(int64(st.Steps))
	a.mCompares.Store(int64(st.Comparisons))
	a.mSwaps.Store(int64(st.Swaps))
	a.mWrites.Store(int64(st.Writes))
	a.mStepRate.Set(a.stepRate)
	a.mStatus.Store(run.Status().String())
	a.mProgress.Store(run.Progress())
}

// Run polls events on a goroutine and draws at the configured frame rate
// until the user quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constant.EventQueueSize)
	crashed := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				crashed <- fmt.Errorf("event poller crashed: %v\n%s", r, debug.Stack())
			}
		}()
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.frameRate))
	defer ticker.Stop()

	a.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-crashed:
			return err
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}

// Controller exposes the session for callers that drive runs directly
func (a *App) Controller() *session.Controller {
	return a.ctrl
}

// Metrics returns the registry rendered in the debug overlay
func (a *App) Metrics() *status.Registry {
	return a.metrics
}
