package engine

import (
	"fmt"

	"github.com/lixenwraith/sortviz/sequence"
)

// quickRange is a pending inclusive range [lo, hi] with at least two elements
type quickRange struct {
	lo, hi int
}

// quickState is Lomuto quicksort with the recursion held in stack
//
// A partition takes one pivot-selection step (middle element swapped to hi),
// one step per scanned element (a comparison and at most one swap), and one
// pivot-placement step that pushes the two sides.
type quickState struct {
	stack []quickRange

	active bool
	lo, hi int
	i, j   int
}

func newQuick(n int) *quickState {
	q := &quickState{}
	if n > 1 {
		q.stack = append(q.stack, quickRange{lo: 0, hi: n - 1})
	}
	return q
}

func (q *quickState) step(seq *sequence.Sequence, res *StepResult) bool {
	if !q.active {
		if len(q.stack) == 0 {
			return true
		}
		r := q.stack[len(q.stack)-1]
		q.stack = q.stack[:len(q.stack)-1]

		q.lo, q.hi = r.lo, r.hi
		q.i, q.j = r.lo, r.lo
		q.active = true

		mid := r.lo + (r.hi-r.lo)/2
		if mid != r.hi {
			seq.Swap(mid, r.hi)
			res.swap(mid, r.hi)
		}
		return false
	}

	if q.j < q.hi {
		res.compare(q.j, q.hi)
		if seq.Less(q.j, q.hi) {
			if q.i != q.j {
				seq.Swap(q.i, q.j)
				res.swap(q.i, q.j)
			}
			q.i++
		}
		q.j++
		return false
	}

	// Scan done: pivot goes between the partitions
	if q.i != q.hi {
		seq.Swap(q.i, q.hi)
		res.swap(q.i, q.hi)
	}
	q.active = false

	left := quickRange{lo: q.lo, hi: q.i - 1}
	right := quickRange{lo: q.i + 1, hi: q.hi}
	// Larger side pushed first keeps the stack O(log n) deep
	if left.hi-left.lo < right.hi-right.lo {
		left, right = right, left
	}
	for _, r := range []quickRange{left, right} {
		if r.hi > r.lo {
			q.stack = append(q.stack, r)
		}
	}
	return len(q.stack) == 0
}

func (q *quickState) settled() bool { return true }

func (q *quickState) String() string {
	if q.active {
		return fmt.Sprintf("partition [%d,%d] i=%d j=%d pending=%d", q.lo, q.hi, q.i, q.j, len(q.stack))
	}
	return fmt.Sprintf("pending=%d", len(q.stack))
}
