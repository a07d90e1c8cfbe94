package engine

import (
	"fmt"

	"github.com/lixenwraith/sortviz/sequence"
)

// mergeFrame is a pending half-open range [lo, hi)
// split is set once both halves have been pushed, so the next pop merges
type mergeFrame struct {
	lo, hi int
	split  bool
}

// mergeState is top-down merge sort with the recursion held in stack
//
// A step either splits one range or advances the active merge by one
// element: one comparison while both halves remain, and one write.
// scratch holds a copy of the active range so writes never clobber unread input.
type mergeState struct {
	stack   []mergeFrame
	scratch []sequence.Element

	active      bool
	lo, mid, hi int
	i, j, k     int
}

func newMerge(n int) *mergeState {
	m := &mergeState{}
	if n > 1 {
		m.stack = append(m.stack, mergeFrame{lo: 0, hi: n})
		m.scratch = make([]sequence.Element, n)
	}
	return m
}

func (m *mergeState) step(seq *sequence.Sequence, res *StepResult) bool {
	if m.active {
		m.advance(seq, res)
		return m.finished()
	}
	if len(m.stack) == 0 {
		return true
	}

	f := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]

	if !f.split {
		mid := f.lo + (f.hi-f.lo)/2
		m.stack = append(m.stack, mergeFrame{lo: f.lo, hi: f.hi, split: true})
		// Right pushed first so the left half is handled first; single
		// elements are already sorted and never pushed
		if f.hi-mid > 1 {
			m.stack = append(m.stack, mergeFrame{lo: mid, hi: f.hi})
		}
		if mid-f.lo > 1 {
			m.stack = append(m.stack, mergeFrame{lo: f.lo, hi: mid})
		}
		return false
	}

	m.lo, m.hi = f.lo, f.hi
	m.mid = f.lo + (f.hi-f.lo)/2
	for x := m.lo; x < m.hi; x++ {
		m.scratch[x] = seq.At(x)
	}
	m.i, m.j, m.k = m.lo, m.mid, m.lo
	m.active = true

	m.advance(seq, res)
	return m.finished()
}

// advance writes one element of the active merge into position k
func (m *mergeState) advance(seq *sequence.Sequence, res *StepResult) {
	var v sequence.Element
	switch {
	case m.i < m.mid && m.j < m.hi:
		res.compare(m.i, m.j)
		// Ties take the left element, keeping the sort stable
		if m.scratch[m.j] < m.scratch[m.i] {
			v = m.scratch[m.j]
			m.j++
		} else {
			v = m.scratch[m.i]
			m.i++
		}
	case m.i < m.mid:
		v = m.scratch[m.i]
		m.i++
	default:
		v = m.scratch[m.j]
		m.j++
	}

	seq.Set(m.k, v)
	res.write(m.k)
	m.k++
	if m.k >= m.hi {
		m.active = false
	}
}

// Outside an active merge every write has landed
func (m *mergeState) settled() bool { return !m.active }

func (m *mergeState) finished() bool {
	return !m.active && len(m.stack) == 0
}

func (m *mergeState) String() string {
	if m.active {
		return fmt.Sprintf("merge [%d,%d) i=%d j=%d k=%d pending=%d", m.lo, m.hi, m.i, m.j, m.k, len(m.stack))
	}
	return fmt.Sprintf("pending=%d", len(m.stack))
}
