// Package session owns the current sort run and replaces it wholesale on
// algorithm selection or reset
package session

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/lixenwraith/sortviz/algorithm"
	"github.com/lixenwraith/sortviz/engine"
	"github.com/lixenwraith/sortviz/sequence"
)

// ErrInvalidAlgorithm is returned by Select for an unknown identifier
// The current run is left untouched
var ErrInvalidAlgorithm = errors.New("invalid algorithm")

// Config holds the run parameters the controller needs
type Config struct {
	Size      int
	Algorithm algorithm.ID
	Seed      uint64
	BogoLimit int
	Catalog   algorithm.Catalog
}

// Controller is the single owner of the current run
// Not safe for concurrent use; the frame loop is the only caller
type Controller struct {
	cfg   Config
	rng   *rand.Rand
	run   *engine.Run
	runID string

	// onNewRun is notified after every run replacement
	onNewRun func(runID string, run *engine.Run)
}

// Option configures a Controller
type Option func(*Controller)

// WithRunHook registers fn to be called after each new run is installed
func WithRunHook(fn func(runID string, run *engine.Run)) Option {
	return func(c *Controller) { c.onNewRun = fn }
}

// New creates a controller and installs the first run
func New(cfg Config, opts ...Option) (*Controller, error) {
	if cfg.Size < 0 {
		cfg.Size = 0
	}
	if cfg.Catalog == (algorithm.Catalog{}) {
		cfg.Catalog = algorithm.DefaultCatalog()
	}

	c := &Controller{
		cfg: cfg,
		rng: sequence.NewRand(cfg.Seed),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Select(cfg.Algorithm); err != nil {
		return nil, err
	}
	return c, nil
}

// Select discards the current run and starts alg on a freshly shuffled sequence
func (c *Controller) Select(alg algorithm.ID) error {
	if _, ok := c.cfg.Catalog.Lookup(alg); !ok {
		return fmt.Errorf("%w: %v", ErrInvalidAlgorithm, alg)
	}
	return c.install(alg)
}

// SelectName resolves a name such as "quick" and selects it
func (c *Controller) SelectName(name string) error {
	alg, err := algorithm.Parse(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlgorithm, err)
	}
	return c.Select(alg)
}

// Reset regenerates the sequence for the current algorithm
func (c *Controller) Reset() {
	// The current algorithm was validated when it was installed
	_ = c.install(c.run.Algorithm())
}

// Resize changes the element count and resets
func (c *Controller) Resize(n int) {
	if n < 0 {
		n = 0
	}
	c.cfg.Size = n
	c.Reset()
}

func (c *Controller) install(alg algorithm.ID) error {
	seq := sequence.Generate(c.cfg.Size, c.rng)
	run, err := engine.NewRun(alg, seq,
		engine.WithCatalog(c.cfg.Catalog),
		engine.WithRand(c.rng),
		engine.WithBogoLimit(c.cfg.BogoLimit),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlgorithm, err)
	}

	c.run = run
	c.runID = uuid.NewString()[:8]
	log.Printf("session: run %s started algorithm=%s n=%d implemented=%t",
		c.runID, alg, seq.Len(), run.Metadata().Implemented)

	if c.onNewRun != nil {
		c.onNewRun(c.runID, run)
	}
	return nil
}

// Step runs the sortedness oracle and, if still unsorted, one engine step
func (c *Controller) Step() engine.StepResult {
	wasTerminal := c.run.Status().Terminal()
	res := c.run.Step()
	if res.Status.Terminal() && !wasTerminal {
		st := c.run.Stats()
		log.Printf("session: run %s %s after %d steps (cmp=%d swap=%d write=%d)",
			c.runID, res.Status, st.Steps, st.Comparisons, st.Swaps, st.Writes)
	}
	return res
}

// Metadata returns the display info for the active algorithm
func (c *Controller) Metadata() algorithm.Metadata {
	return c.run.Metadata()
}

// Catalog returns the metadata table used for new runs
func (c *Controller) Catalog() algorithm.Catalog {
	return c.cfg.Catalog
}

// Run returns the current run
func (c *Controller) Run() *engine.Run {
	return c.run
}

// RunID returns the short identifier of the current run, used in logs
func (c *Controller) RunID() string {
	return c.runID
}

// Size returns the element count used for new runs
func (c *Controller) Size() int {
	return c.cfg.Size
}
