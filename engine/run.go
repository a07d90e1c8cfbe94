// Package engine advances sorting algorithms one bounded unit of work at a time
//
// Each algorithm is a resumable state machine with its own private progress
// state. A Run pairs one machine with one sequence; Step performs exactly one
// unit of work (a comparison, a swap, a write, or a pass boundary) and
// returns, so the caller decides the cadence.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/sortviz/algorithm"
	"github.com/lixenwraith/sortviz/sequence"
)

// machine is the per-algorithm progress state
type machine interface {
	// step performs one unit of work on seq and records it in res
	// Returns true once the machine has nothing left to do
	step(seq *sequence.Sequence, res *StepResult) bool

	// settled reports whether seq is currently a permutation of its input
	// False while values are being written back from a side buffer
	settled() bool

	// String renders the progress trackers for the debug overlay
	String() string
}

type options struct {
	catalog   algorithm.Catalog
	rng       *rand.Rand
	bogoLimit int
}

// Option configures a Run
type Option func(*options)

// WithCatalog supplies the metadata table; unimplemented entries step as no-ops
func WithCatalog(c algorithm.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithRand sets the random source used by bogo shuffles
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithBogoLimit caps bogo at n shuffles; the run then ends Exhausted
// Zero means unbounded (expected O(n*n!) steps)
func WithBogoLimit(n int) Option {
	return func(o *options) { o.bogoLimit = n }
}

// Run is one sort attempt: an algorithm, its sequence and its step state
// Not safe for concurrent use
type Run struct {
	alg    algorithm.ID
	meta   algorithm.Metadata
	seq    *sequence.Sequence
	state  machine
	status Status
	done   bool
	stats  Stats
}

// NewRun creates a run with freshly zeroed step state for alg
func NewRun(alg algorithm.ID, seq *sequence.Sequence, opts ...Option) (*Run, error) {
	o := options{catalog: algorithm.DefaultCatalog()}
	for _, opt := range opts {
		opt(&o)
	}

	meta, ok := o.catalog.Lookup(alg)
	if !ok {
		return nil, fmt.Errorf("%w: %v", algorithm.ErrUnknown, alg)
	}
	if seq == nil {
		seq = sequence.New(nil)
	}

	return &Run{
		alg:   alg,
		meta:  meta,
		seq:   seq,
		state: newMachine(alg, seq.Len(), &o),
	}, nil
}

func newMachine(alg algorithm.ID, n int, o *options) machine {
	switch alg {
	case algorithm.Bubble:
		return &bubbleState{}
	case algorithm.Insertion:
		return newInsertion()
	case algorithm.Selection:
		return newSelection()
	case algorithm.Merge:
		return newMerge(n)
	case algorithm.Quick:
		return newQuick(n)
	case algorithm.Radix:
		return &radixState{}
	case algorithm.Bogo:
		return &bogoState{rng: o.rng, limit: o.bogoLimit}
	}
	panic(fmt.Sprintf("engine: no machine for %v", alg))
}

// Step advances the run by one unit of work
//
// Order: terminal check, sortedness oracle, implemented check, machine step.
// A terminal run returns its status without touching the sequence. The oracle
// is skipped while the machine is mid write-back, so a partially written
// sequence is never reported Sorted. An unimplemented algorithm on an
// unsorted sequence returns StatusRunning with no mutation.
func (r *Run) Step() StepResult {
	if r.status.Terminal() {
		return StepResult{Status: r.status}
	}

	if r.state.settled() && IsSorted(r.seq) {
		r.status = StatusSorted
		return StepResult{Status: r.status}
	}
	if !r.meta.Implemented {
		return StepResult{Status: StatusRunning}
	}
	if r.done {
		r.status = StatusExhausted
		return StepResult{Status: r.status}
	}

	res := StepResult{Status: StatusRunning}
	r.done = r.state.step(r.seq, &res)
	r.stats.record(res)
	return res
}

// Algorithm returns the algorithm this run executes
func (r *Run) Algorithm() algorithm.ID { return r.alg }

// Metadata returns the catalog entry the run was created with
func (r *Run) Metadata() algorithm.Metadata { return r.meta }

// Sequence returns the sequence being sorted; callers must not mutate it
func (r *Run) Sequence() *sequence.Sequence { return r.seq }

// Status returns the current lifecycle state
func (r *Run) Status() Status { return r.status }

// Stats returns a copy of the work counters
func (r *Run) Stats() Stats { return r.stats }

// Progress describes the machine's trackers, e.g. "inner=3 outer=1"
func (r *Run) Progress() string { return r.state.String() }
