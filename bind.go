package hashvec

import (
	"fmt"

	"github.com/hupe1980/hashvec/ops"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// The Bind functions resolve a typed operator from a registry. The element
// kind is derived from E; a nil registry means Default. A missing entry is
// reported as ErrUnsupportedOperator when binding, never when calling.

func lookupAs[F any](r *Registry, k Key) (F, error) {
	if r == nil {
		r = Default
	}
	var zero F
	fn, err := r.Lookup(k)
	if err != nil {
		return zero, err
	}
	f, ok := fn.(F)
	if !ok {
		return zero, &ErrTypeMismatch{Key: k, Want: fmt.Sprintf("%T", zero), Got: fmt.Sprintf("%T", fn)}
	}
	return f, nil
}

func key[E any](f Family, op ops.Op, left, right Shape) Key {
	return Key{Family: f, Op: op, Left: left, Right: right, Elem: scalar.KindOf[E]()}
}

// BindUpdateDenseSparse binds dense op= sparse.
func BindUpdateDenseSparse[E any](r *Registry, op ops.Op) (ops.DenseSparseUpdate[E], error) {
	return lookupAs[ops.DenseSparseUpdate[E]](r, key[E](FamilyUpdate, op, ShapeDense, ShapeSparse))
}

// BindBinaryDenseSparse binds dense op sparse into a new dense vector.
func BindBinaryDenseSparse[E any](r *Registry, op ops.Op) (ops.DenseSparseBinary[E], error) {
	return lookupAs[ops.DenseSparseBinary[E]](r, key[E](FamilyBinary, op, ShapeDense, ShapeSparse))
}

// BindUpdateSparseDense binds sparse op= dense.
func BindUpdateSparseDense[E any](r *Registry, op ops.Op) (ops.SparseDenseUpdate[E], error) {
	return lookupAs[ops.SparseDenseUpdate[E]](r, key[E](FamilyUpdate, op, ShapeSparse, ShapeDense))
}

// BindBinarySparseDense binds sparse op dense into a new dense vector.
func BindBinarySparseDense[E any](r *Registry, op ops.Op) (ops.SparseDenseBinary[E], error) {
	return lookupAs[ops.SparseDenseBinary[E]](r, key[E](FamilyBinary, op, ShapeSparse, ShapeDense))
}

// BindDotDenseSparse binds dense·sparse.
func BindDotDenseSparse[E any](r *Registry) (ops.DenseSparseDot[E], error) {
	return lookupAs[ops.DenseSparseDot[E]](r, key[E](FamilyDot, 0, ShapeDense, ShapeSparse))
}

// BindDotSparseDense binds sparse·dense.
func BindDotSparseDense[E any](r *Registry) (ops.SparseDenseDot[E], error) {
	return lookupAs[ops.SparseDenseDot[E]](r, key[E](FamilyDot, 0, ShapeSparse, ShapeDense))
}

// BindScale binds sparse × scalar.
func BindScale[E any](r *Registry) (ops.Scaler[E], error) {
	return lookupAs[ops.Scaler[E]](r, key[E](FamilyScale, 0, ShapeSparse, ShapeScalar))
}

// BindNegate binds unary minus.
func BindNegate[E any](r *Registry) (ops.Negator[E], error) {
	return lookupAs[ops.Negator[E]](r, key[E](FamilyNegate, 0, ShapeSparse, ShapeNone))
}

// BindMapAll binds a map over every index.
func BindMapAll[E any](r *Registry) (ops.Mapper[E], error) {
	return lookupAs[ops.Mapper[E]](r, key[E](FamilyMap, 0, ShapeSparse, ShapeNone))
}

// BindMapActive binds a map over active slots.
func BindMapActive[E any](r *Registry) (ops.Mapper[E], error) {
	return lookupAs[ops.Mapper[E]](r, key[E](FamilyMapActive, 0, ShapeSparse, ShapeNone))
}

// BindMapPairs binds f(i, v[i]) over every index.
func BindMapPairs[E any](r *Registry) (ops.PairMapper[E], error) {
	return lookupAs[ops.PairMapper[E]](r, key[E](FamilyMapPairs, 0, ShapeSparse, ShapeNone))
}

// BindMapActivePairs binds f(i, x) over active slots.
func BindMapActivePairs[E any](r *Registry) (ops.PairMapper[E], error) {
	return lookupAs[ops.PairMapper[E]](r, key[E](FamilyMapActivePairs, 0, ShapeSparse, ShapeNone))
}

// BindZipMap binds an index-wise combination of two sparse vectors.
func BindZipMap[E any](r *Registry) (ops.ZipMapper[E], error) {
	return lookupAs[ops.ZipMapper[E]](r, key[E](FamilyZipMap, 0, ShapeSparse, ShapeSparse))
}

// BindCopy binds a deep copy of a sparse vector.
func BindCopy[E any](r *Registry) (func(*sparse.Vector[E]) *sparse.Vector[E], error) {
	return lookupAs[func(*sparse.Vector[E]) *sparse.Vector[E]](r, key[E](FamilyCopy, 0, ShapeSparse, ShapeNone))
}
