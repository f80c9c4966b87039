package ops

import (
	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// UpdateDenseSparse binds dst op= src for a dense destination.
//
// OpAdd and OpSub leave indices without an active sparse slot untouched and
// therefore only walk the sparse store. Every other operator reads the sparse
// value (or default) at each dense position.
//
// Integer OpDiv and OpMod panic on a zero divisor, including the zero default
// at inactive indices, as Go's / and % do. Positions before the failing one
// are already written when the panic occurs; only the length check is
// guaranteed to run before any write.
func UpdateDenseSparse[E any](ring scalar.Ring[E], op Op) (DenseSparseUpdate[E], error) {
	f, err := Elementwise(ring, op)
	if err != nil {
		return nil, err
	}
	if op == OpAdd || op == OpSub {
		return func(dst *dense.Vector[E], src *sparse.Vector[E]) error {
			if err := sparse.CheckLengths(dst.Len(), src.Len()); err != nil {
				return err
			}
			data, off, stride := dst.Data(), dst.Offset(), dst.Stride()
			index, values := src.Index(), src.Data()
			for slot, i := range index {
				if i < 0 {
					continue
				}
				j := off + i*stride
				data[j] = f(data[j], values[slot])
			}
			return nil
		}, nil
	}
	return func(dst *dense.Vector[E], src *sparse.Vector[E]) error {
		if err := sparse.CheckLengths(dst.Len(), src.Len()); err != nil {
			return err
		}
		data, stride := dst.Data(), dst.Stride()
		for i, j := 0, dst.Offset(); i < dst.Len(); i, j = i+1, j+stride {
			data[j] = f(data[j], src.At(i))
		}
		return nil
	}, nil
}

// BinaryDenseSparse binds a op b into a new dense vector.
func BinaryDenseSparse[E any](ring scalar.Ring[E], op Op) (DenseSparseBinary[E], error) {
	update, err := UpdateDenseSparse(ring, op)
	if err != nil {
		return nil, err
	}
	return Derive[*dense.Vector[E], *sparse.Vector[E]]((*dense.Vector[E]).Copy, update), nil
}
