package ops

import (
	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/internal/kernel"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// DotDenseSparse binds the inner product a·b.
//
// Only active sparse slots contribute; the sum starts at ring.Zero(). Float
// kinds run on the gather kernels of internal/kernel.
func DotDenseSparse[E any](ring scalar.Ring[E]) DenseSparseDot[E] {
	switch ring.Kind() {
	case scalar.KindFloat64:
		if fn, ok := any(DenseSparseDot[float64](dotFloat64)).(DenseSparseDot[E]); ok {
			return fn
		}
	case scalar.KindFloat32:
		if fn, ok := any(DenseSparseDot[float32](dotFloat32)).(DenseSparseDot[E]); ok {
			return fn
		}
	}
	return func(a *dense.Vector[E], b *sparse.Vector[E]) (E, error) {
		acc := ring.Zero()
		if err := sparse.CheckLengths(a.Len(), b.Len()); err != nil {
			return acc, err
		}
		data, off, stride := a.Data(), a.Offset(), a.Stride()
		values := b.Data()
		for slot, i := range b.Index() {
			if i < 0 {
				continue
			}
			acc = ring.Add(acc, ring.Mul(data[off+i*stride], values[slot]))
		}
		return acc, nil
	}
}

// DotSparseDense binds the inner product a·b with a sparse left operand.
func DotSparseDense[E any](ring scalar.Ring[E]) SparseDenseDot[E] {
	dot := DotDenseSparse(ring)
	return func(a *sparse.Vector[E], b *dense.Vector[E]) (E, error) {
		if err := sparse.CheckLengths(a.Len(), b.Len()); err != nil {
			var zero E
			return zero, err
		}
		return dot(b, a)
	}
}

func dotFloat64(a *dense.Vector[float64], b *sparse.Vector[float64]) (float64, error) {
	if err := sparse.CheckLengths(a.Len(), b.Len()); err != nil {
		return 0, err
	}
	return kernel.DotSlots64(a.Data(), a.Offset(), a.Stride(), b.Index(), b.Data()), nil
}

func dotFloat32(a *dense.Vector[float32], b *sparse.Vector[float32]) (float32, error) {
	if err := sparse.CheckLengths(a.Len(), b.Len()); err != nil {
		return 0, err
	}
	return kernel.DotSlots32(a.Data(), a.Offset(), a.Stride(), b.Index(), b.Data()), nil
}
