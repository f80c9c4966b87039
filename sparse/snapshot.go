package sparse

import (
	"fmt"

	"github.com/hupe1980/hashvec/scalar"
)

// Snapshot is a serializable view of a vector: its length and active entries
// sorted by index.
type Snapshot[E any] struct {
	Length  int   `json:"length"`
	Indices []int `json:"indices"`
	Values  []E   `json:"values"`
}

// Snapshot captures the length and active entries of v.
func (v *Vector[E]) Snapshot() Snapshot[E] {
	entries := v.sortedEntries()
	s := Snapshot[E]{
		Length:  v.Len(),
		Indices: make([]int, len(entries)),
		Values:  make([]E, len(entries)),
	}
	for n, e := range entries {
		s.Indices[n] = e.Index
		s.Values[n] = e.Value
	}
	return s
}

// FromSnapshot rebuilds a vector from a snapshot.
func FromSnapshot[E any](ring scalar.Ring[E], s Snapshot[E]) (*Vector[E], error) {
	if len(s.Indices) != len(s.Values) {
		return nil, fmt.Errorf("snapshot: %d indices but %d values", len(s.Indices), len(s.Values))
	}
	pairs := make([]Entry[E], len(s.Indices))
	for n, i := range s.Indices {
		pairs[n] = Entry[E]{Index: i, Value: s.Values[n]}
	}
	return FromPairs(ring, s.Length, pairs...)
}
