package sparse

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/internal/openaddr"
	"github.com/hupe1980/hashvec/scalar"
)

// Vector is a fixed-length sparse vector.
type Vector[E any] struct {
	ring  scalar.Ring[E]
	table *openaddr.Table[E]
}

// Entry is an (index, value) pair.
type Entry[E any] struct {
	Index int
	Value E
}

// New returns a vector of the given length with no active entries.
func New[E any](ring scalar.Ring[E], length int, opts ...Option) (*Vector[E], error) {
	if length < 0 {
		return nil, &ErrInvalidLength{Length: length}
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return &Vector[E]{
		ring:  ring,
		table: openaddr.New(length, ring.Zero(), o.initialCapacity),
	}, nil
}

// Ring returns the element arithmetic of v.
func (v *Vector[E]) Ring() scalar.Ring[E] { return v.ring }

// Len returns the logical length of v.
func (v *Vector[E]) Len() int { return v.table.Size() }

// Default returns the value read at inactive indices.
func (v *Vector[E]) Default() E { return v.table.Default() }

func (v *Vector[E]) checkIndex(i int) error {
	if i < 0 || i >= v.table.Size() {
		return &ErrIndexOutOfRange{Index: i, Length: v.table.Size()}
	}
	return nil
}

// Get returns the value at index i.
func (v *Vector[E]) Get(i int) (E, error) {
	if err := v.checkIndex(i); err != nil {
		var zero E
		return zero, err
	}
	return v.table.Get(i), nil
}

// Set stores x at index i. On error v is unchanged.
func (v *Vector[E]) Set(i int, x E) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.table.Set(i, x)
	return nil
}

// At returns the value at index i. It panics if i is out of range.
func (v *Vector[E]) At(i int) E {
	if err := v.checkIndex(i); err != nil {
		panic(err)
	}
	return v.table.Get(i)
}

// MustSet stores x at index i. It panics if i is out of range.
func (v *Vector[E]) MustSet(i int, x E) {
	if err := v.checkIndex(i); err != nil {
		panic(err)
	}
	v.table.Set(i, x)
}

// ActiveSize returns the number of active slots.
func (v *Vector[E]) ActiveSize() int { return v.table.ActiveSize() }

// IterableSize returns the number of store slots; slots in
// [0, IterableSize()) may be inspected with IsActive, IndexAt and ValueAt.
func (v *Vector[E]) IterableSize() int { return v.table.IterableSize() }

// IsActive reports whether the store slot holds an entry.
func (v *Vector[E]) IsActive(slot int) bool { return v.table.IsActive(slot) }

// IndexAt returns the index held by an active store slot.
func (v *Vector[E]) IndexAt(slot int) int { return v.table.Index()[slot] }

// ValueAt returns the value held by an active store slot.
func (v *Vector[E]) ValueAt(slot int) E { return v.table.Data()[slot] }

// Index returns the index per store slot; inactive slots hold -1.
// The slice aliases the store and must not be modified.
func (v *Vector[E]) Index() []int { return v.table.Index() }

// Data returns the value per store slot, parallel to Index.
// The slice aliases the store and must not be modified.
func (v *Vector[E]) Data() []E { return v.table.Data() }

// Active yields (index, value) for every active slot in store order.
// Callers must not rely on index order.
func (v *Vector[E]) Active() iter.Seq2[int, E] {
	return v.table.Active()
}

// Copy returns a deep copy of v with an independent store.
func (v *Vector[E]) Copy() *Vector[E] {
	return &Vector[E]{ring: v.ring, table: v.table.Copy()}
}

// Equal reports whether v and o have the same length and the same value at
// every index, reading inactive indices as the default.
func (v *Vector[E]) Equal(o *Vector[E]) bool {
	if v == o {
		return true
	}
	if o == nil || v.Len() != o.Len() {
		return false
	}

	seen := bitset.New(uint(v.Len()))
	for i, x := range v.table.Active() {
		seen.Set(uint(i))
		if !v.ring.Equal(x, o.table.Get(i)) {
			return false
		}
	}
	def := v.table.Default()
	for i, y := range o.table.Active() {
		if seen.Test(uint(i)) {
			continue
		}
		if !v.ring.Equal(def, y) {
			return false
		}
	}
	return true
}

// Support returns the indices holding a value other than the default.
func (v *Vector[E]) Support() (*roaring.Bitmap, error) {
	if uint64(v.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("support: length %d exceeds uint32 index range", v.Len())
	}
	rb := roaring.New()
	def := v.table.Default()
	for i, x := range v.table.Active() {
		if !v.ring.Equal(x, def) {
			rb.Add(uint32(i))
		}
	}
	return rb, nil
}

// ToDense materializes v as a contiguous dense vector.
func (v *Vector[E]) ToDense() *dense.Vector[E] {
	d := dense.Zeros(v.ring, v.Len())
	for i, x := range v.table.Active() {
		d.Set(i, x)
	}
	return d
}

// sortedEntries returns the active entries ordered by index.
func (v *Vector[E]) sortedEntries() []Entry[E] {
	entries := make([]Entry[E], 0, v.ActiveSize())
	for i, x := range v.table.Active() {
		entries = append(entries, Entry[E]{Index: i, Value: x})
	}
	slices.SortFunc(entries, func(a, b Entry[E]) int { return cmp.Compare(a.Index, b.Index) })
	return entries
}

// String formats v as SparseVector(length)[i:v ...] with entries sorted by index.
func (v *Vector[E]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SparseVector(%d)[", v.Len())
	for n, e := range v.sortedEntries() {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%v", e.Index, e.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}
