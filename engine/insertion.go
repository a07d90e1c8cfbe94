package engine

import (
	"fmt"

	"github.com/lixenwraith/sortviz/sequence"
)

// insertionState grows a sorted prefix [0, outer) by walking the element at
// inner backwards one adjacent swap per step
type insertionState struct {
	outer int
	inner int
}

func newInsertion() *insertionState {
	return &insertionState{outer: 1, inner: 1}
}

func (s *insertionState) step(seq *sequence.Sequence, res *StepResult) bool {
	n := seq.Len()
	if s.outer >= n {
		return true
	}

	res.compare(s.inner-1, s.inner)
	if seq.Less(s.inner, s.inner-1) {
		seq.Swap(s.inner-1, s.inner)
		res.swap(s.inner-1, s.inner)
		s.inner--
		if s.inner > 0 {
			return false
		}
	}

	// Element settled, extend the prefix
	s.outer++
	s.inner = s.outer
	return s.outer >= n
}

func (s *insertionState) settled() bool { return true }

func (s *insertionState) String() string {
	return fmt.Sprintf("outer=%d inner=%d", s.outer, s.inner)
}
