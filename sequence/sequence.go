// Package sequence holds the bar heights a sort run reorders in place
package sequence

import "math/rand/v2"

// Element is a bar height; only its ordering matters to the engine
type Element = int

// Sequence is an index-addressable run of elements with a fixed length
// Presentation state (colors, positions) is never stored here
type Sequence struct {
	values []Element
}

// New copies values into a fresh Sequence
func New(values []Element) *Sequence {
	v := make([]Element, len(values))
	copy(v, values)
	return &Sequence{values: v}
}

// Generate builds the permutation 0..n-1 and shuffles it uniformly
// Negative n is treated as zero
func Generate(n int, rng *rand.Rand) *Sequence {
	if n < 0 {
		n = 0
	}
	s := &Sequence{values: make([]Element, n)}
	for i := range s.values {
		s.values[i] = i
	}
	s.Shuffle(rng)
	return s
}

// NewRand returns a deterministic PCG source for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle applies a Fisher-Yates shuffle; every permutation is equally likely
func (s *Sequence) Shuffle(rng *rand.Rand) {
	if rng == nil {
		rand.Shuffle(len(s.values), s.Swap)
		return
	}
	rng.Shuffle(len(s.values), s.Swap)
}

// Len returns the element count
func (s *Sequence) Len() int {
	return len(s.values)
}

// At returns the element at i
func (s *Sequence) At(i int) Element {
	return s.values[i]
}

// Set overwrites the element at i
func (s *Sequence) Set(i int, v Element) {
	s.values[i] = v
}

// Less reports whether the element at i orders strictly before the one at j
func (s *Sequence) Less(i, j int) bool {
	return s.values[i] < s.values[j]
}

// Compare returns -1, 0 or +1 for the ordering of elements at i and j
func (s *Sequence) Compare(i, j int) int {
	switch {
	case s.values[i] < s.values[j]:
		return -1
	case s.values[i] > s.values[j]:
		return 1
	}
	return 0
}

// Swap exchanges the elements at i and j
func (s *Sequence) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Values returns a copy of the current ordering
func (s *Sequence) Values() []Element {
	v := make([]Element, len(s.values))
	copy(v, s.values)
	return v
}

// Max returns the largest element, or 0 for an empty sequence
func (s *Sequence) Max() Element {
	if len(s.values) == 0 {
		return 0
	}
	m := s.values[0]
	for _, v := range s.values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
