package render

import "github.com/lixenwraith/sortviz/engine"

// Role is the presentation state of one bar index
type Role uint8

const (
	RoleNormal Role = iota
	RoleCompared
	RoleSwapped
	RoleWritten
	RoleFinal
)

// Palette holds per-index roles for the current run
// Highlights last one step: Apply clears the previous step's marks first,
// so an index whose element moved never keeps a stale color
type Palette struct {
	roles  []Role
	marked []int
}

// NewPalette creates a palette for n bars
func NewPalette(n int) *Palette {
	p := &Palette{}
	p.Reset(n)
	return p
}

// Reset sizes the palette for a new run with every bar normal
func (p *Palette) Reset(n int) {
	if cap(p.roles) >= n {
		p.roles = p.roles[:n]
		clear(p.roles)
	} else {
		p.roles = make([]Role, n)
	}
	p.marked = p.marked[:0]
}

// Len returns the bar count
func (p *Palette) Len() int {
	return len(p.roles)
}

// Role returns the role of index i; out-of-range indices are normal
func (p *Palette) Role(i int) Role {
	if i < 0 || i >= len(p.roles) {
		return RoleNormal
	}
	return p.roles[i]
}

// Apply updates roles from one step result
func (p *Palette) Apply(res engine.StepResult) {
	for _, i := range p.marked {
		if p.roles[i] != RoleFinal {
			p.roles[i] = RoleNormal
		}
	}
	p.marked = p.marked[:0]

	if res.Status == engine.StatusSorted {
		for i := range p.roles {
			p.roles[i] = RoleFinal
		}
		return
	}

	if res.HasCompare() {
		p.mark(res.Compared.I, RoleCompared)
		p.mark(res.Compared.J, RoleCompared)
	}
	if res.HasRead() {
		p.mark(res.Read, RoleCompared)
	}
	if res.HasWrite() {
		p.mark(res.Written, RoleWritten)
	}
	// Swap wins over compare on shared indices
	if res.HasSwap() {
		p.mark(res.Swapped.I, RoleSwapped)
		p.mark(res.Swapped.J, RoleSwapped)
	}
}

func (p *Palette) mark(i int, role Role) {
	if i < 0 || i >= len(p.roles) {
		return
	}
	p.roles[i] = role
	p.marked = append(p.marked, i)
}
