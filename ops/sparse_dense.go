package ops

import (
	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// UpdateSparseDense binds dst op= src for a sparse destination.
// Every index of dst is written, so the result has no inactive slots.
//
// Integer OpDiv and OpMod panic on a zero divisor as Go's / and % do, leaving
// the indices before the failing one already written.
func UpdateSparseDense[E any](ring scalar.Ring[E], op Op) (SparseDenseUpdate[E], error) {
	f, err := Elementwise(ring, op)
	if err != nil {
		return nil, err
	}
	return func(dst *sparse.Vector[E], src *dense.Vector[E]) error {
		if err := sparse.CheckLengths(dst.Len(), src.Len()); err != nil {
			return err
		}
		data, stride := src.Data(), src.Stride()
		for i, j := 0, src.Offset(); i < dst.Len(); i, j = i+1, j+stride {
			dst.MustSet(i, f(dst.At(i), data[j]))
		}
		return nil
	}, nil
}

// BinarySparseDense binds a op b into a new dense vector.
func BinarySparseDense[E any](ring scalar.Ring[E], op Op) (SparseDenseBinary[E], error) {
	f, err := Elementwise(ring, op)
	if err != nil {
		return nil, err
	}
	return func(a *sparse.Vector[E], b *dense.Vector[E]) (*dense.Vector[E], error) {
		if err := sparse.CheckLengths(a.Len(), b.Len()); err != nil {
			return nil, err
		}
		out := make([]E, a.Len())
		data, stride := b.Data(), b.Stride()
		for i, j := 0, b.Offset(); i < len(out); i, j = i+1, j+stride {
			out[i] = f(a.At(i), data[j])
		}
		return dense.New(out), nil
	}, nil
}
