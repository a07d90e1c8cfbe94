package sequence

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 50, 257} {
		s := Generate(n, NewRand(42))
		require.Equal(t, n, s.Len())

		got := s.Values()
		sort.Ints(got)
		for i, v := range got {
			assert.Equal(t, i, v, "n=%d", n)
		}
	}
}

func TestGenerateNegativeIsEmpty(t *testing.T) {
	s := Generate(-3, NewRand(1))
	assert.Equal(t, 0, s.Len())
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := Generate(64, NewRand(7)).Values()
	b := Generate(64, NewRand(7)).Values()
	c := Generate(64, NewRand(8)).Values()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// Every permutation of three elements should show up with roughly equal frequency
func TestShuffleUniform(t *testing.T) {
	const trials = 60000
	rng := NewRand(99)
	counts := make(map[[3]int]int)

	for range trials {
		s := New([]Element{0, 1, 2})
		s.Shuffle(rng)
		counts[[3]int{s.At(0), s.At(1), s.At(2)}]++
	}

	require.Len(t, counts, 6)
	expected := trials / 6
	for perm, c := range counts {
		assert.InDelta(t, expected, c, float64(expected)*0.1, "permutation %v", perm)
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := []Element{3, 1, 2}
	s := New(in)
	in[0] = 99

	assert.Equal(t, 3, s.At(0))

	out := s.Values()
	out[1] = 42
	assert.Equal(t, 1, s.At(1))
}

func TestSwapLessCompare(t *testing.T) {
	s := New([]Element{5, 2, 2})

	assert.True(t, s.Less(1, 0))
	assert.False(t, s.Less(1, 2))
	assert.Equal(t, 1, s.Compare(0, 1))
	assert.Equal(t, 0, s.Compare(1, 2))
	assert.Equal(t, -1, s.Compare(2, 0))

	s.Swap(0, 2)
	assert.Equal(t, []Element{2, 2, 5}, s.Values())

	s.Set(1, 9)
	assert.Equal(t, 9, s.At(1))
	assert.Equal(t, 9, s.Max())
	assert.Equal(t, 0, New(nil).Max())
}
