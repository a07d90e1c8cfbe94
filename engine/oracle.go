package engine

import "github.com/lixenwraith/sortviz/sequence"

// IsSorted reports whether seq is non-decreasing over its full length
// Runs before every step regardless of algorithm, so a machine with broken
// termination bookkeeping still ends in StatusSorted
func IsSorted(seq *sequence.Sequence) bool {
	for i := 1; i < seq.Len(); i++ {
		if seq.Less(i, i-1) {
			return false
		}
	}
	return true
}
