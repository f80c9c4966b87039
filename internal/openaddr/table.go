package openaddr

import (
	"iter"
	"math/bits"
)

const (
	// MinCapacity is the smallest slot count a table allocates.
	MinCapacity = 16

	inactive = -1

	// fibHash64 is 2^64 / golden ratio.
	fibHash64 = 0x9E3779B97F4A7C15
)

// Table is an open-addressed map from indices in [0, size) to values.
type Table[E any] struct {
	index []int
	data  []E
	load  int
	size  int
	def   E
	shift uint
}

// New creates a table for keys in [0, size) with room for at least
// initialCapacity active entries before the first rehash.
func New[E any](size int, def E, initialCapacity int) *Table[E] {
	t := &Table[E]{size: size, def: def}
	t.alloc(capacityFor(initialCapacity))
	return t
}

// capacityFor returns the slot count needed to hold n entries under the load factor.
func capacityFor(n int) int {
	need := n + n/3 + 1
	if need <= MinCapacity {
		return MinCapacity
	}
	return 1 << bits.Len(uint(need-1))
}

func (t *Table[E]) alloc(capacity int) {
	t.index = make([]int, capacity)
	for i := range t.index {
		t.index[i] = inactive
	}
	t.data = make([]E, capacity)
	for i := range t.data {
		t.data[i] = t.def
	}
	t.shift = uint(64 - bits.TrailingZeros(uint(capacity)))
	t.load = 0
}

func (t *Table[E]) slotFor(i int) int {
	return int((uint64(i) * fibHash64) >> t.shift)
}

// locate returns the slot holding i, or the inactive slot where i belongs.
func (t *Table[E]) locate(i int) int {
	mask := len(t.index) - 1
	slot := t.slotFor(i)
	for t.index[slot] != i && t.index[slot] != inactive {
		slot = (slot + 1) & mask
	}
	return slot
}

// Get returns the value stored for i, or the default if i is absent.
// The caller guarantees 0 <= i < Size().
func (t *Table[E]) Get(i int) E {
	slot := t.locate(i)
	if t.index[slot] == inactive {
		return t.def
	}
	return t.data[slot]
}

// Set stores v for i, activating the slot if needed.
// The caller guarantees 0 <= i < Size().
func (t *Table[E]) Set(i int, v E) {
	slot := t.locate(i)
	if t.index[slot] == i {
		t.data[slot] = v
		return
	}
	if (t.load+1)*4 > len(t.index)*3 {
		t.rehash(len(t.index) * 2)
		slot = t.locate(i)
	}
	t.index[slot] = i
	t.data[slot] = v
	t.load++
}

func (t *Table[E]) rehash(capacity int) {
	oldIndex, oldData := t.index, t.data
	t.alloc(capacity)
	for slot, i := range oldIndex {
		if i == inactive {
			continue
		}
		dst := t.locate(i)
		t.index[dst] = i
		t.data[dst] = oldData[slot]
		t.load++
	}
}

// Contains reports whether i has an active slot.
func (t *Table[E]) Contains(i int) bool {
	return t.index[t.locate(i)] == i
}

// Size returns the logical key range.
func (t *Table[E]) Size() int { return t.size }

// Default returns the value reported for absent keys.
func (t *Table[E]) Default() E { return t.def }

// ActiveSize returns the number of active slots.
func (t *Table[E]) ActiveSize() int { return t.load }

// IterableSize returns the number of slots; an upper bound on ActiveSize.
func (t *Table[E]) IterableSize() int { return len(t.index) }

// IsActive reports whether slot holds an entry.
func (t *Table[E]) IsActive(slot int) bool { return t.index[slot] != inactive }

// Index returns the key per slot. Inactive slots hold -1.
// The slice aliases the table and must not be modified.
func (t *Table[E]) Index() []int { return t.index }

// Data returns the value per slot. Inactive slots hold the default.
// The slice aliases the table and must not be modified.
func (t *Table[E]) Data() []E { return t.data }

// Active yields (key, value) for every active slot in slot order.
func (t *Table[E]) Active() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for slot, i := range t.index {
			if i == inactive {
				continue
			}
			if !yield(i, t.data[slot]) {
				return
			}
		}
	}
}

// Copy returns a deep copy of the table's slot arrays.
// Values themselves are copied by assignment.
func (t *Table[E]) Copy() *Table[E] {
	c := &Table[E]{
		index: make([]int, len(t.index)),
		data:  make([]E, len(t.data)),
		load:  t.load,
		size:  t.size,
		def:   t.def,
		shift: t.shift,
	}
	copy(c.index, t.index)
	copy(c.data, t.data)
	return c
}
