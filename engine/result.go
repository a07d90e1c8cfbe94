package engine

// Status is the lifecycle state of a run
type Status int

const (
	// StatusRunning means more steps are needed
	StatusRunning Status = iota
	// StatusSorted means the oracle confirmed a non-decreasing sequence
	StatusSorted
	// StatusExhausted means the machine stopped without the oracle confirming order
	// Only reachable through a step cap (bogo) or a machine defect
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSorted:
		return "sorted"
	case StatusExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Terminal reports whether further steps are no-ops
func (s Status) Terminal() bool {
	return s != StatusRunning
}

// Pair is two element indices touched together
type Pair struct {
	I, J int
}

// Ops is a bitmask of the work a step performed
type Ops uint8

const (
	OpCompare Ops = 1 << iota
	OpSwap
	OpWrite
	OpRead
	OpShuffle
)

// StepResult tells the caller which indices changed so it can recolor them
// Fields are only meaningful when the matching Ops bit is set
type StepResult struct {
	Status   Status
	Ops      Ops
	Compared Pair
	Swapped  Pair
	Written  int
	Read     int
}

func (r StepResult) HasCompare() bool { return r.Ops&OpCompare != 0 }
func (r StepResult) HasSwap() bool    { return r.Ops&OpSwap != 0 }
func (r StepResult) HasWrite() bool   { return r.Ops&OpWrite != 0 }
func (r StepResult) HasRead() bool    { return r.Ops&OpRead != 0 }
func (r StepResult) HasShuffle() bool { return r.Ops&OpShuffle != 0 }

func (r *StepResult) compare(i, j int) {
	r.Ops |= OpCompare
	r.Compared = Pair{i, j}
}

func (r *StepResult) swap(i, j int) {
	r.Ops |= OpSwap
	r.Swapped = Pair{i, j}
}

func (r *StepResult) write(i int) {
	r.Ops |= OpWrite
	r.Written = i
}

func (r *StepResult) read(i int) {
	r.Ops |= OpRead
	r.Read = i
}

// Stats counts the work done by a run
type Stats struct {
	Steps       int
	Comparisons int
	Swaps       int
	Writes      int
	Reads       int
	Shuffles    int
}

func (s *Stats) record(r StepResult) {
	s.Steps++
	if r.HasCompare() {
		s.Comparisons++
	}
	if r.HasSwap() {
		s.Swaps++
	}
	if r.HasWrite() {
		s.Writes++
	}
	if r.HasRead() {
		s.Reads++
	}
	if r.HasShuffle() {
		s.Shuffles++
	}
}
