package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/sortviz/sequence"
)

// bogoState keeps no progress: every step is a fresh uniform shuffle
// Expected step count is O(n*n!); limit bounds it for test and bench runs
type bogoState struct {
	rng      *rand.Rand
	limit    int
	shuffles int
}

func (b *bogoState) step(seq *sequence.Sequence, res *StepResult) bool {
	seq.Shuffle(b.rng)
	res.Ops |= OpShuffle
	b.shuffles++
	return b.limit > 0 && b.shuffles >= b.limit
}

func (b *bogoState) settled() bool { return true }

func (b *bogoState) String() string {
	if b.limit > 0 {
		return fmt.Sprintf("shuffles=%d/%d", b.shuffles, b.limit)
	}
	return fmt.Sprintf("shuffles=%d", b.shuffles)
}
