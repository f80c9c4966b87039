package ops

import (
	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/sparse"
)

// DenseSparseUpdate applies dst[i] = dst[i] op src[i] in place.
type DenseSparseUpdate[E any] func(dst *dense.Vector[E], src *sparse.Vector[E]) error

// DenseSparseBinary returns a new dense vector holding a[i] op b[i].
type DenseSparseBinary[E any] func(a *dense.Vector[E], b *sparse.Vector[E]) (*dense.Vector[E], error)

// SparseDenseUpdate applies dst[i] = dst[i] op src[i] in place.
type SparseDenseUpdate[E any] func(dst *sparse.Vector[E], src *dense.Vector[E]) error

// SparseDenseBinary returns a new dense vector holding a[i] op b[i].
type SparseDenseBinary[E any] func(a *sparse.Vector[E], b *dense.Vector[E]) (*dense.Vector[E], error)

// DenseSparseDot returns the inner product of a dense and a sparse vector.
type DenseSparseDot[E any] func(a *dense.Vector[E], b *sparse.Vector[E]) (E, error)

// SparseDenseDot returns the inner product of a sparse and a dense vector.
type SparseDenseDot[E any] func(a *sparse.Vector[E], b *dense.Vector[E]) (E, error)

// Derive builds a pure binary operator from an in-place one: the left operand
// is cloned and the clone is updated. The left operand is never modified.
func Derive[L, R any](clone func(L) L, update func(L, R) error) func(L, R) (L, error) {
	return func(a L, b R) (L, error) {
		out := clone(a)
		if err := update(out, b); err != nil {
			var zero L
			return zero, err
		}
		return out, nil
	}
}
