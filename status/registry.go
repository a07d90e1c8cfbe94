// Package status holds the atomic metrics shown in the debug overlay
package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the metrics facade
// The frame loop caches pointers once; per-frame updates are plain atomic writes
type Registry struct {
	Ints    *Gauges[atomic.Int64]
	Floats  *Gauges[AtomicFloat]
	Strings *Gauges[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewGauges[atomic.Int64](),
		Floats:  NewGauges[AtomicFloat](),
		Strings: NewGauges[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Lines renders every metric as "name: value", strings first, then ints, then floats
// Within a group, metrics appear in the order they were registered
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Each(func(name string, s *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s: %s", name, s.Load()))
	})
	r.Ints.Each(func(name string, n *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", name, n.Load()))
	})
	r.Floats.Each(func(name string, f *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", name, f.Get()))
	})
	return lines
}
