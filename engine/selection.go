package engine

import (
	"fmt"

	"github.com/lixenwraith/sortviz/sequence"
)

// selectionState scans the unsorted suffix for its minimum, then swaps it
// into position outer
// Invariant: outer <= minIndex, outer <= inner <= n
type selectionState struct {
	inner    int
	outer    int
	minIndex int
}

// The scan starts past outer, which is the initial minimum candidate
func newSelection() *selectionState {
	return &selectionState{inner: 1}
}

func (s *selectionState) step(seq *sequence.Sequence, res *StepResult) bool {
	n := seq.Len()
	if s.outer >= n {
		return true
	}

	if s.inner < n {
		res.compare(s.inner, s.minIndex)
		if seq.Less(s.inner, s.minIndex) {
			s.minIndex = s.inner
		}
		s.inner++
		return false
	}

	// Scan finished: one swap finalizes position outer
	if s.minIndex != s.outer {
		seq.Swap(s.outer, s.minIndex)
		res.swap(s.outer, s.minIndex)
	}
	s.outer++
	s.minIndex = s.outer
	s.inner = min(s.outer+1, n)
	return s.outer >= n
}

func (s *selectionState) settled() bool { return true }

func (s *selectionState) String() string {
	return fmt.Sprintf("inner=%d outer=%d min=%d", s.inner, s.outer, s.minIndex)
}
