// Package bench drives runs to completion without a screen and reports
// per-algorithm operation counts
package bench

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/sortviz/algorithm"
	"github.com/lixenwraith/sortviz/constant"
	"github.com/lixenwraith/sortviz/engine"
	"github.com/lixenwraith/sortviz/sequence"
)

// ctxCheckInterval is how many steps run between cancellation checks
const ctxCheckInterval = 4096

// Options selects the benchmark grid
type Options struct {
	Algorithms []algorithm.ID
	Sizes      []int
	Trials     int
	Seed       uint64

	// MaxSteps caps each run; zero means no cap
	MaxSteps  int
	BogoLimit int

	// Workers bounds concurrent runs; zero uses GOMAXPROCS
	Workers int
}

// DefaultOptions benchmarks every algorithm except bogo on small sizes
func DefaultOptions() Options {
	algs := make([]algorithm.ID, 0, algorithm.Count)
	for _, id := range algorithm.All() {
		if id != algorithm.Bogo {
			algs = append(algs, id)
		}
	}
	return Options{
		Algorithms: algs,
		Sizes:      []int{16, 64, 256},
		Trials:     5,
		Seed:       1,
		MaxSteps:   10_000_000,
		BogoLimit:  constant.BenchBogoLimit,
	}
}

// Result is one finished run
type Result struct {
	Algorithm algorithm.ID
	Size      int
	Trial     int
	Status    engine.Status
	Stats     engine.Stats
	// Capped is set when MaxSteps stopped the run before a terminal status
	Capped  bool
	Elapsed time.Duration
}

// Run executes every (algorithm, size, trial) in parallel
// Results are ordered by algorithm, size, then trial
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Trials <= 0 {
		opts.Trials = 1
	}
	for _, id := range opts.Algorithms {
		if !id.Valid() {
			return nil, fmt.Errorf("bench: %w: %v", algorithm.ErrUnknown, id)
		}
	}

	total := len(opts.Algorithms) * len(opts.Sizes) * opts.Trials
	results := make([]Result, total)

	g, ctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	idx := 0
	for _, alg := range opts.Algorithms {
		for _, size := range opts.Sizes {
			for trial := 0; trial < opts.Trials; trial++ {
				slot := idx
				idx++
				g.Go(func() error {
					res, err := runOne(ctx, opts, alg, size, trial)
					if err != nil {
						return err
					}
					results[slot] = res
					return nil
				})
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// trialSeed derives an independent, reproducible seed per grid cell
func trialSeed(base uint64, alg algorithm.ID, size, trial int) uint64 {
	return base ^ uint64(alg)<<56 ^ uint64(size)<<24 ^ uint64(trial)
}

func runOne(ctx context.Context, opts Options, alg algorithm.ID, size, trial int) (Result, error) {
	rng := sequence.NewRand(trialSeed(opts.Seed, alg, size, trial))
	seq := sequence.Generate(size, rng)

	run, err := engine.NewRun(alg, seq, engine.WithRand(rng), engine.WithBogoLimit(opts.BogoLimit))
	if err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: alg, Size: size, Trial: trial}
	start := time.Now()
	for calls := 1; ; calls++ {
		if res.Status = run.Step().Status; res.Status.Terminal() {
			break
		}
		if opts.MaxSteps > 0 && run.Stats().Steps >= opts.MaxSteps {
			res.Capped = true
			break
		}
		if calls%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
	}
	res.Elapsed = time.Since(start)
	res.Stats = run.Stats()
	return res, nil
}

// Summary aggregates the trials of one (algorithm, size) cell
type Summary struct {
	Algorithm algorithm.ID
	Size      int
	Trials    int
	Sorted    int
	Steps     float64
	Compares  float64
	Swaps     float64
	Writes    float64
	MaxSteps  int
	Elapsed   time.Duration
}

// Summarize averages results per (algorithm, size), in first-seen order
func Summarize(results []Result) []Summary {
	type cell struct {
		alg  algorithm.ID
		size int
	}
	var order []cell
	acc := make(map[cell]*Summary)

	for _, r := range results {
		k := cell{r.Algorithm, r.Size}
		s, ok := acc[k]
		if !ok {
			s = &Summary{Algorithm: r.Algorithm, Size: r.Size}
			acc[k] = s
			order = append(order, k)
		}
		s.Trials++
		if r.Status == engine.StatusSorted {
			s.Sorted++
		}
		s.Steps += float64(r.Stats.Steps)
		s.Compares += float64(r.Stats.Comparisons)
		s.Swaps += float64(r.Stats.Swaps)
		s.Writes += float64(r.Stats.Writes)
		s.MaxSteps = max(s.MaxSteps, r.Stats.Steps)
		s.Elapsed += r.Elapsed
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		s := acc[k]
		n := float64(s.Trials)
		s.Steps /= n
		s.Compares /= n
		s.Swaps /= n
		s.Writes /= n
		s.Elapsed /= time.Duration(s.Trials)
		out = append(out, *s)
	}
	return out
}

const (
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Write prints summaries as an aligned table
// color adds ANSI emphasis on the header and on rows with unsorted trials
func Write(w io.Writer, summaries []Summary, color bool) error {
	rows := slices.Clone(summaries)
	slices.SortStableFunc(rows, func(a, b Summary) int {
		if a.Algorithm != b.Algorithm {
			return int(a.Algorithm) - int(b.Algorithm)
		}
		return a.Size - b.Size
	})

	// Align first, then color whole lines so escapes never skew column widths
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "algorithm\tn\tsorted\tsteps\tcompares\tswaps\twrites\tmax steps\ttime\t")
	for _, s := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d/%d\t%.0f\t%.0f\t%.0f\t%.0f\t%d\t%s\t\n",
			s.Algorithm, s.Size, s.Sorted, s.Trials,
			s.Steps, s.Compares, s.Swaps, s.Writes, s.MaxSteps,
			s.Elapsed.Round(time.Microsecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.SplitAfter(buf.String(), "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if color {
			switch {
			case i == 0:
				line = ansiBold + strings.TrimSuffix(line, "\n") + ansiReset + "\n"
			case rows[i-1].Sorted < rows[i-1].Trials:
				line = ansiRed + strings.TrimSuffix(line, "\n") + ansiReset + "\n"
			}
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
