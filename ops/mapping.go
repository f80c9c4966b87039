package ops

import (
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// Scaler multiplies every value of v by s into a new vector.
type Scaler[E any] func(v *sparse.Vector[E], s E) *sparse.Vector[E]

// Negator returns -v as a new vector.
type Negator[E any] func(v *sparse.Vector[E]) *sparse.Vector[E]

// Mapper applies f to the values of v into a new vector.
type Mapper[E any] func(v *sparse.Vector[E], f func(E) E) *sparse.Vector[E]

// PairMapper applies f to the (index, value) pairs of v into a new vector.
type PairMapper[E any] func(v *sparse.Vector[E], f func(int, E) E) *sparse.Vector[E]

// ZipMapper combines a and b index by index into a new vector.
type ZipMapper[E any] func(a, b *sparse.Vector[E], f func(E, E) E) (*sparse.Vector[E], error)

// Scale binds sparse × scalar. Inactive slots stay inactive since
// zero times anything is zero.
func Scale[E any](ring scalar.Ring[E]) Scaler[E] {
	return func(v *sparse.Vector[E], s E) *sparse.Vector[E] {
		out := v.Copy()
		for i, x := range v.Active() {
			out.MustSet(i, ring.Mul(x, s))
		}
		return out
	}
}

// Negate binds unary minus as scaling by -1.
func Negate[E any](ring scalar.Ring[E]) Negator[E] {
	scale := Scale(ring)
	minusOne := ring.Neg(ring.One())
	return func(v *sparse.Vector[E]) *sparse.Vector[E] {
		return scale(v, minusOne)
	}
}

// MapAll applies f at every index, active or not. The result has every
// index active.
func MapAll[E any](v *sparse.Vector[E], f func(E) E) *sparse.Vector[E] {
	return MapPairs(v, func(_ int, x E) E { return f(x) })
}

// MapActive applies f to active slots only; the result is active exactly
// where v is, even if f maps the default to something else.
func MapActive[E any](v *sparse.Vector[E], f func(E) E) *sparse.Vector[E] {
	return MapActivePairs(v, func(_ int, x E) E { return f(x) })
}

// MapPairs applies f(i, v[i]) at every index.
func MapPairs[E any](v *sparse.Vector[E], f func(int, E) E) *sparse.Vector[E] {
	out, _ := sparse.Tabulate(v.Ring(), v.Len(), func(i int) E { return f(i, v.At(i)) })
	return out
}

// MapActivePairs applies f(i, x) to active slots only.
func MapActivePairs[E any](v *sparse.Vector[E], f func(int, E) E) *sparse.Vector[E] {
	out, _ := sparse.New(v.Ring(), v.Len(), sparse.WithInitialCapacity(v.ActiveSize()))
	for i, x := range v.Active() {
		out.MustSet(i, f(i, x))
	}
	return out
}

// ZipMap returns a vector with f(a[i], b[i]) at every index.
func ZipMap[E any](a, b *sparse.Vector[E], f func(E, E) E) (*sparse.Vector[E], error) {
	if err := sparse.CheckLengths(a.Len(), b.Len()); err != nil {
		return nil, err
	}
	return sparse.Tabulate(a.Ring(), a.Len(), func(i int) E { return f(a.At(i), b.At(i)) })
}
