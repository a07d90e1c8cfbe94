package engine

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sortviz/algorithm"
	"github.com/lixenwraith/sortviz/sequence"
)

var deterministic = []algorithm.ID{
	algorithm.Bubble,
	algorithm.Insertion,
	algorithm.Selection,
	algorithm.Merge,
	algorithm.Quick,
	algorithm.Radix,
}

// drain steps run until it reaches a terminal status or limit calls
func drain(t *testing.T, run *Run, limit int) Status {
	t.Helper()
	for range limit {
		if res := run.Step(); res.Status.Terminal() {
			return res.Status
		}
	}
	t.Fatalf("%v did not finish within %d steps", run.Algorithm(), limit)
	return StatusRunning
}

func newRun(t *testing.T, alg algorithm.ID, values []int, opts ...Option) *Run {
	t.Helper()
	run, err := NewRun(alg, sequence.New(values), opts...)
	require.NoError(t, err)
	return run
}

func TestBubbleScenarioTenSteps(t *testing.T) {
	seq := sequence.New([]int{3, 1, 4, 1, 5})
	state := &bubbleState{}

	var done bool
	for range 10 {
		require.False(t, done, "finished before the tenth step")
		var res StepResult
		done = state.step(seq, &res)
		require.True(t, res.HasCompare())
	}

	assert.True(t, done)
	assert.Equal(t, []int{1, 1, 3, 4, 5}, seq.Values())
	assert.True(t, IsSorted(seq))
}

func TestSelectionScenarioReversed(t *testing.T) {
	seq := sequence.New([]int{5, 4, 3, 2, 1})
	state := newSelection()

	completions := 0
	for completions < seq.Len()-1 {
		before := state.outer
		var res StepResult
		state.step(seq, &res)
		if state.outer != before {
			completions++
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, seq.Values())
}

func TestSelectionIndicesStayInBounds(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17} {
		seq := sequence.Generate(n, sequence.NewRand(uint64(n)))
		state := newSelection()
		for done := false; !done; {
			require.LessOrEqual(t, state.outer, state.minIndex)
			require.LessOrEqual(t, state.outer, state.inner)
			require.LessOrEqual(t, state.inner, n)
			var res StepResult
			done = state.step(seq, &res)
		}
		assert.True(t, IsSorted(seq), "n=%d", n)
	}
}

func TestEmptyAndSingleAreImmediatelySorted(t *testing.T) {
	for _, alg := range algorithm.All() {
		for _, values := range [][]int{nil, {7}} {
			run := newRun(t, alg, values)
			res := run.Step()
			assert.Equal(t, StatusSorted, res.Status, "%v n=%d", alg, len(values))
			assert.Zero(t, run.Stats().Steps)
		}
	}
}

func TestAllAlgorithmsSortRandomPermutations(t *testing.T) {
	for _, alg := range deterministic {
		for _, n := range []int{0, 1, 2, 50} {
			for seed := uint64(1); seed <= 5; seed++ {
				seq := sequence.Generate(n, sequence.NewRand(seed))
				run, err := NewRun(alg, seq)
				require.NoError(t, err)

				status := drain(t, run, 10*n*n+10)
				require.Equal(t, StatusSorted, status, "%v n=%d seed=%d", alg, n, seed)

				got := seq.Values()
				require.True(t, sort.IntsAreSorted(got))
				for i, v := range got {
					require.Equal(t, i, v, "%v lost or duplicated an element", alg)
				}
			}
		}
	}
}

func TestSortsDuplicatesAndNegatives(t *testing.T) {
	values := []int{4, -2, 7, 4, 0, -2, 13, 4, -9, 100, 7}
	want := append([]int(nil), values...)
	sort.Ints(want)

	for _, alg := range deterministic {
		run := newRun(t, alg, values)
		require.Equal(t, StatusSorted, drain(t, run, 10000), alg.String())
		assert.Equal(t, want, run.Sequence().Values(), alg.String())
	}
}

// sortedCopy returns values in ascending order without touching the input
func sortedCopy(values []int) []int {
	out := append([]int(nil), values...)
	sort.Ints(out)
	return out
}

func TestMergeWriteBackKeepsEveryElement(t *testing.T) {
	// Two writes into the final merge leave [1,2,2,4], which is non-decreasing
	run := newRun(t, algorithm.Merge, []int{1, 3, 2, 4})
	require.Equal(t, StatusSorted, drain(t, run, 100))
	assert.Equal(t, []int{1, 2, 3, 4}, run.Sequence().Values())
}

func TestRadixCollectKeepsEveryElement(t *testing.T) {
	values := []int{4, -2, 7, 4, 0, -2, 13, 4, -9, 100, 7}
	run := newRun(t, algorithm.Radix, values)
	require.Equal(t, StatusSorted, drain(t, run, 1000))
	assert.Equal(t, sortedCopy(values), run.Sequence().Values())
}

func TestSortedOnlyReportedForPermutations(t *testing.T) {
	inputs := [][]int{
		{1, 3, 2, 4},
		{2, 2, 1, 1},
		{5, 1, 5, 1, 5},
		{4, -2, 7, 4, 0, -2, 13, 4, -9, 100, 7},
		{10, 20, 11, 21, 12, 22},
	}
	for seed := uint64(1); seed <= 8; seed++ {
		inputs = append(inputs, sequence.Generate(33, sequence.NewRand(seed)).Values())
	}

	for _, alg := range []algorithm.ID{algorithm.Merge, algorithm.Radix} {
		for _, values := range inputs {
			want := sortedCopy(values)
			run := newRun(t, alg, values)

			for range 10000 {
				res := run.Step()
				if res.Status == StatusSorted {
					require.Equal(t, want, run.Sequence().Values(), "%v on %v", alg, values)
				}
				if res.Status.Terminal() {
					break
				}
			}
			require.Equal(t, StatusSorted, run.Status(), "%v on %v", alg, values)
		}
	}
}

func TestBubbleStepBound(t *testing.T) {
	for _, n := range []int{2, 10, 50} {
		for seed := uint64(1); seed <= 5; seed++ {
			run, err := NewRun(algorithm.Bubble, sequence.Generate(n, sequence.NewRand(seed)))
			require.NoError(t, err)
			drain(t, run, n*n)
			assert.LessOrEqual(t, run.Stats().Steps, n*(n-1)/2)
		}
	}
}

func TestSelectionOuterBound(t *testing.T) {
	const n = 50
	run, err := NewRun(algorithm.Selection, sequence.Generate(n, sequence.NewRand(3)))
	require.NoError(t, err)
	drain(t, run, n*n)

	// Each outer iteration is at most (n - outer) comparisons plus one swap step
	assert.LessOrEqual(t, run.Stats().Steps, n*(n+1)/2+n)
	assert.LessOrEqual(t, run.Stats().Swaps, n)
}

func TestLinearithmicStepCounts(t *testing.T) {
	const n = 256
	logN := int(math.Ceil(math.Log2(n)))

	merge, err := NewRun(algorithm.Merge, sequence.Generate(n, sequence.NewRand(11)))
	require.NoError(t, err)
	drain(t, merge, n*n)
	assert.LessOrEqual(t, merge.Stats().Steps, n*logN+2*n)
	assert.LessOrEqual(t, merge.Stats().Writes, n*logN)

	quick, err := NewRun(algorithm.Quick, sequence.Generate(n, sequence.NewRand(11)))
	require.NoError(t, err)
	drain(t, quick, n*n)
	assert.Less(t, quick.Stats().Steps, n*n/4, "quick should be far from quadratic on a shuffle")
}

func TestRadixStepCount(t *testing.T) {
	const n = 50 // values 0..49: two digit passes
	run, err := NewRun(algorithm.Radix, sequence.Generate(n, sequence.NewRand(5)))
	require.NoError(t, err)
	drain(t, run, n*n)

	stats := run.Stats()
	assert.LessOrEqual(t, stats.Steps, 1+2*2*n)
	assert.Zero(t, stats.Comparisons)
	assert.Zero(t, stats.Swaps)
}

func TestEachStepTouchesAtMostTwoIndices(t *testing.T) {
	for _, alg := range deterministic {
		seq := sequence.Generate(40, sequence.NewRand(21))
		run, err := NewRun(alg, seq)
		require.NoError(t, err)

		for {
			before := seq.Values()
			res := run.Step()
			if res.Status.Terminal() {
				break
			}

			changed := 0
			for i, v := range seq.Values() {
				if v != before[i] {
					changed++
				}
			}
			require.LessOrEqual(t, changed, 2, "%v changed %d indices in one step", alg, changed)
			if changed == 2 {
				require.True(t, res.HasSwap(), "%v swapped without reporting it", alg)
			}
			if changed == 1 {
				require.True(t, res.HasWrite(), "%v wrote without reporting it", alg)
			}
		}
	}
}

func TestTerminalStepIsIdempotent(t *testing.T) {
	for _, alg := range deterministic {
		run := newRun(t, alg, []int{9, 3, 7, 1, 8, 2})
		require.Equal(t, StatusSorted, drain(t, run, 1000))

		values := run.Sequence().Values()
		stats := run.Stats()
		progress := run.Progress()

		for range 5 {
			res := run.Step()
			assert.Equal(t, StatusSorted, res.Status)
			assert.Zero(t, res.Ops)
		}
		assert.Equal(t, values, run.Sequence().Values())
		assert.Equal(t, stats, run.Stats())
		assert.Equal(t, progress, run.Progress())
	}
}

func TestUnimplementedIsNoOp(t *testing.T) {
	catalog := algorithm.DefaultCatalog().Disable(algorithm.Quick)
	run := newRun(t, algorithm.Quick, []int{3, 2, 1}, WithCatalog(catalog))

	assert.False(t, run.Metadata().Implemented)
	for range 10 {
		res := run.Step()
		assert.Equal(t, StatusRunning, res.Status)
		assert.Zero(t, res.Ops)
	}
	assert.Equal(t, []int{3, 2, 1}, run.Sequence().Values())
	assert.Zero(t, run.Stats().Steps)
}

func TestUnimplementedSortedInputIsSorted(t *testing.T) {
	catalog := algorithm.DefaultCatalog().Disable(algorithm.Merge)
	for _, values := range [][]int{nil, {4}, {1, 2, 2, 3}} {
		run := newRun(t, algorithm.Merge, values, WithCatalog(catalog))
		res := run.Step()
		assert.Equal(t, StatusSorted, res.Status, "n=%d", len(values))
		assert.Zero(t, run.Stats().Steps)
	}
}

func TestSelectionNeverComparesAnIndexWithItself(t *testing.T) {
	run := newRun(t, algorithm.Selection, []int{5, 4, 3, 2, 1, 0})
	for {
		res := run.Step()
		if res.Status.Terminal() {
			break
		}
		if res.HasCompare() {
			require.NotEqual(t, res.Compared.I, res.Compared.J)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, run.Sequence().Values())
	// At most n-1-outer comparisons per pass
	assert.LessOrEqual(t, run.Stats().Comparisons, 6*5/2)
}

func TestNewRunRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewRun(algorithm.Count, sequence.New([]int{1}))
	assert.ErrorIs(t, err, algorithm.ErrUnknown)

	_, err = NewRun(algorithm.ID(-1), nil)
	assert.ErrorIs(t, err, algorithm.ErrUnknown)
}

func TestBogoSortsSmallInput(t *testing.T) {
	run := newRun(t, algorithm.Bogo, []int{2, 0, 3, 1}, WithRand(sequence.NewRand(4)))
	require.Equal(t, StatusSorted, drain(t, run, 100000))
	assert.Equal(t, []int{0, 1, 2, 3}, run.Sequence().Values())
	assert.Equal(t, run.Stats().Steps, run.Stats().Shuffles)
}

func TestBogoLimitExhausts(t *testing.T) {
	seq := sequence.Generate(50, sequence.NewRand(8))
	run, err := NewRun(algorithm.Bogo, seq, WithRand(sequence.NewRand(9)), WithBogoLimit(3))
	require.NoError(t, err)

	status := drain(t, run, 10)
	assert.Equal(t, StatusExhausted, status)
	assert.Equal(t, 3, run.Stats().Shuffles)
	assert.Equal(t, "shuffles=3/3", run.Progress())
}

func TestFreshStateProgress(t *testing.T) {
	tests := map[algorithm.ID]string{
		algorithm.Bubble:    "inner=0 outer=0",
		algorithm.Selection: "inner=1 outer=0 min=0",
		algorithm.Insertion: "outer=1 inner=1",
		algorithm.Merge:     "pending=1",
		algorithm.Quick:     "pending=1",
	}
	for alg, want := range tests {
		run := newRun(t, alg, []int{2, 1, 3})
		assert.Equal(t, want, run.Progress(), alg.String())
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "sorted", StatusSorted.String())
	assert.Equal(t, "exhausted", StatusExhausted.String())
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, StatusExhausted.Terminal())
}
