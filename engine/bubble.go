package engine

import (
	"fmt"

	"github.com/lixenwraith/sortviz/sequence"
)

// bubbleState walks adjacent pairs; the last outer elements are already final
// Invariant: 0 <= inner <= n-1-outer while running
type bubbleState struct {
	inner int
	outer int
}

func (b *bubbleState) step(seq *sequence.Sequence, res *StepResult) bool {
	n := seq.Len()
	if b.outer >= n-1 {
		return true
	}

	res.compare(b.inner, b.inner+1)
	// Equal elements never swap
	if seq.Less(b.inner+1, b.inner) {
		seq.Swap(b.inner, b.inner+1)
		res.swap(b.inner, b.inner+1)
	}

	b.inner++
	if b.inner >= n-1-b.outer {
		b.inner = 0
		b.outer++
	}
	return b.outer >= n-1
}

func (b *bubbleState) settled() bool { return true }

func (b *bubbleState) String() string {
	return fmt.Sprintf("inner=%d outer=%d", b.inner, b.outer)
}
