package engine

import (
	"fmt"

	"github.com/lixenwraith/sortviz/sequence"
)

const radixBase = 10

type radixPhase int

const (
	radixDistribute radixPhase = iota
	radixCollect
)

// radixState is LSD radix sort, base 10, over value-min
//
// The first step scans for min and span. After that each step either
// distributes one element into its digit bucket or writes one element back
// from the buckets. Each digit pass costs 2n steps.
type radixState struct {
	ready bool
	min   sequence.Element
	span  int
	exp   int

	phase   radixPhase
	cursor  int
	buckets [radixBase][]sequence.Element
	bucket  int
	offset  int
}

func (r *radixState) step(seq *sequence.Sequence, res *StepResult) bool {
	n := seq.Len()
	if !r.ready {
		r.ready = true
		if n < 2 {
			return true
		}
		lo, hi := seq.At(0), seq.At(0)
		for x := 1; x < n; x++ {
			v := seq.At(x)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		r.min, r.span, r.exp = lo, hi-lo, 1
		return r.span == 0
	}

	switch r.phase {
	case radixDistribute:
		v := seq.At(r.cursor)
		d := r.digit(v)
		r.buckets[d] = append(r.buckets[d], v)
		res.read(r.cursor)
		r.cursor++
		if r.cursor == n {
			r.phase = radixCollect
			r.cursor, r.bucket, r.offset = 0, 0, 0
		}
		return false

	case radixCollect:
		// At most radixBase empty buckets are skipped
		for r.offset >= len(r.buckets[r.bucket]) {
			r.bucket++
			r.offset = 0
		}
		seq.Set(r.cursor, r.buckets[r.bucket][r.offset])
		res.write(r.cursor)
		r.offset++
		r.cursor++
		if r.cursor < n {
			return false
		}

		for d := range r.buckets {
			r.buckets[d] = r.buckets[d][:0]
		}
		r.phase = radixDistribute
		r.cursor = 0
		// Most significant digit done
		if r.span/r.exp < radixBase {
			return true
		}
		r.exp *= radixBase
	}
	return false
}

// Distribution only reads; collection overwrites from the buckets
func (r *radixState) settled() bool { return r.phase == radixDistribute }

func (r *radixState) digit(v sequence.Element) int {
	return ((v - r.min) / r.exp) % radixBase
}

func (r *radixState) String() string {
	phase := "distribute"
	if r.phase == radixCollect {
		phase = "collect"
	}
	return fmt.Sprintf("exp=%d %s cursor=%d bucket=%d", r.exp, phase, r.cursor, r.bucket)
}
