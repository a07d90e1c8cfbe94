// Package algorithm identifies the sorting strategies and their static metadata
package algorithm

import (
	"errors"
	"fmt"
	"strings"
)

// ID selects a sorting strategy
type ID int

const (
	// O(n^2)
	Bubble ID = iota
	Insertion
	Selection

	// O(n log n)
	Merge
	Quick

	// O(n+k)
	Radix

	// O(n*n!)
	Bogo

	Count
)

// ErrUnknown is returned when a name or key does not map to an algorithm
var ErrUnknown = errors.New("unknown algorithm")

// Metadata is the display and availability information for one algorithm
type Metadata struct {
	ID          ID
	Name        string
	Complexity  string
	Key         rune
	Implemented bool
}

// Label is the display line used by the overlay, e.g. "B -> Bubble (INCOMPLETE)"
func (m Metadata) Label() string {
	s := fmt.Sprintf("%c -> %s", m.Key, m.Name)
	if !m.Implemented {
		s += " (INCOMPLETE)"
	}
	return s
}

var details = [Count]Metadata{
	Bubble:    {Bubble, "Bubble", "O(n^2)", 'B', true},
	Insertion: {Insertion, "Insertion", "O(n^2)", 'I', true},
	Selection: {Selection, "Selection", "O(n^2)", 'S', true},
	Merge:     {Merge, "Merge", "O(n*log(n))", 'M', true},
	Quick:     {Quick, "Quick", "O(n*log(n))", 'Q', true},
	Radix:     {Radix, "Radix", "O(n+k)", 'R', true},
	Bogo:      {Bogo, "Bogo", "O(n*n!)", 'G', true},
}

// Valid reports whether id names a known algorithm
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// String returns the display name, or a placeholder for invalid ids
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return details[id].Name
}

// All returns every algorithm id in display order
func All() []ID {
	ids := make([]ID, 0, Count)
	for id := ID(0); id < Count; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Parse resolves a case-insensitive name ("bubble", "Quick") to an ID
func Parse(name string) (ID, error) {
	n := strings.TrimSpace(name)
	n = strings.TrimSuffix(strings.ToLower(n), " sort")
	for id := ID(0); id < Count; id++ {
		if strings.ToLower(details[id].Name) == n {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Catalog is the metadata table consulted by runs and the overlay
// The zero value is not usable; start from DefaultCatalog
type Catalog struct {
	entries [Count]Metadata
}

// DefaultCatalog returns the built-in table with every algorithm available
func DefaultCatalog() Catalog {
	return Catalog{entries: details}
}

// Lookup returns metadata for id; ok is false for invalid ids
func (c Catalog) Lookup(id ID) (Metadata, bool) {
	if !id.Valid() {
		return Metadata{}, false
	}
	return c.entries[id], true
}

// ByKey finds the algorithm bound to a hotkey, case-insensitively
func (c Catalog) ByKey(r rune) (ID, bool) {
	up := []rune(strings.ToUpper(string(r)))[0]
	for _, m := range c.entries {
		if m.Key == up {
			return m.ID, true
		}
	}
	return 0, false
}

// Disable returns a copy of the catalog with ids marked unimplemented
// Runs for those ids step as documented no-ops
func (c Catalog) Disable(ids ...ID) Catalog {
	for _, id := range ids {
		if id.Valid() {
			c.entries[id].Implemented = false
		}
	}
	return c
}

// Entries returns every entry in display order
func (c Catalog) Entries() []Metadata {
	out := make([]Metadata, Count)
	copy(out, c.entries[:])
	return out
}
