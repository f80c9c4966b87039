package sparse

import "github.com/hupe1980/hashvec/scalar"

// Fill returns a vector of length n with every index set to x.
func Fill[E any](ring scalar.Ring[E], n int, x E) (*Vector[E], error) {
	return Tabulate(ring, n, func(int) E { return x })
}

// Tabulate returns a vector of length n with index i set to f(i).
func Tabulate[E any](ring scalar.Ring[E], n int, f func(i int) E) (*Vector[E], error) {
	v, err := New(ring, n, WithInitialCapacity(n))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v.table.Set(i, f(i))
	}
	return v, nil
}

// FromSlice returns a vector holding values, every index active.
func FromSlice[E any](ring scalar.Ring[E], values ...E) *Vector[E] {
	v, _ := Tabulate(ring, len(values), func(i int) E { return values[i] })
	return v
}

// FromPairs returns a vector of length n with the given entries set in order;
// later entries overwrite earlier ones at the same index.
func FromPairs[E any](ring scalar.Ring[E], n int, pairs ...Entry[E]) (*Vector[E], error) {
	v, err := New(ring, n, WithInitialCapacity(len(pairs)))
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := v.checkIndex(p.Index); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		v.table.Set(p.Index, p.Value)
	}
	return v, nil
}
