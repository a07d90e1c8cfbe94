package status

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("run.steps")
	b := r.Ints.Get("run.steps")
	assert.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.Equal(t, 1, r.TotalCount())
}

func TestLinesFollowRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Floats.Get("frame.fps").Set(59.94)
	r.Ints.Get("run.swaps").Store(7)
	r.Ints.Get("run.comparisons").Store(12)
	r.Strings.Get("run.id").Store("ab12cd34")

	assert.Equal(t, []string{
		"run.id: ab12cd34",
		"run.swaps: 7",
		"run.comparisons: 12",
		"frame.fps: 59.9",
	}, r.Lines())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())

	s.Store(strings.Repeat("x", MaxStringLen+10))
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				r.Ints.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1600), r.Ints.Get("shared").Load())
	assert.Equal(t, 1, r.Ints.Len())
}

func TestGetAfterGrowthKeepsPointers(t *testing.T) {
	g := NewGauges[atomic.Int64]()
	first := g.Get("elements")
	first.Store(42)
	for i := range 64 {
		g.Get(fmt.Sprintf("bar.%d", i))
	}

	assert.Same(t, first, g.Get("elements"))
	assert.Equal(t, int64(42), g.Get("elements").Load())

	var names []string
	g.Each(func(name string, _ *atomic.Int64) { names = append(names, name) })
	assert.Equal(t, "elements", names[0])
	assert.Equal(t, "bar.63", names[64])
}
