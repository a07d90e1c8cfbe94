package status

import "sync"

// Gauges is a named set of overlay values of type T
// Entries keep the order they were first requested in, which is the order
// the overlay prints them. A pointer handed out by Get never moves.
type Gauges[T any] struct {
	mu    sync.RWMutex
	index map[string]int
	names []string
	vals  []*T
}

func NewGauges[T any]() *Gauges[T] {
	return &Gauges[T]{index: make(map[string]int)}
}

// Get returns the value for name, appending a zero value on first use
func (g *Gauges[T]) Get(name string) *T {
	g.mu.RLock()
	if i, ok := g.index[name]; ok {
		v := g.vals[i]
		g.mu.RUnlock()
		return v
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if i, ok := g.index[name]; ok {
		return g.vals[i]
	}
	v := new(T)
	g.index[name] = len(g.vals)
	g.names = append(g.names, name)
	g.vals = append(g.vals, v)
	return v
}

// Each visits gauges in registration order
func (g *Gauges[T]) Each(fn func(name string, v *T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for i, name := range g.names {
		fn(name, g.vals[i])
	}
}

func (g *Gauges[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vals)
}
