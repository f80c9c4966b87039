package hashvec

import (
	"errors"
	"math/big"

	"github.com/hupe1980/hashvec/ops"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// Default holds every operator for the built-in element kinds.
// It is populated at package initialization and sealed.
var Default = newDefault()

func newDefault() *Registry {
	r := NewRegistry()
	err := errors.Join(
		RegisterRing[int32](r, scalar.Int32{}),
		RegisterRing[int64](r, scalar.Int64{}),
		RegisterRing[float32](r, scalar.Float32{}),
		RegisterRing[float64](r, scalar.Float64{}),
		RegisterRing[*big.Int](r, scalar.BigInt{}),
		RegisterRing[complex128](r, scalar.Complex128{}),
	)
	if err != nil {
		panic(err)
	}
	r.Seal()
	return r
}

type registration struct {
	key Key
	fn  any
}

// RegisterRing registers every operator ring supports. Element-wise
// operators the ring lacks (see ops.Elementwise) are skipped, so looking them
// up later fails with ErrUnsupportedOperator.
func RegisterRing[E any](r *Registry, ring scalar.Ring[E]) error {
	kind := ring.Kind()
	var regs []registration
	add := func(f Family, op ops.Op, left, right Shape, fn any) {
		regs = append(regs, registration{
			key: Key{Family: f, Op: op, Left: left, Right: right, Elem: kind},
			fn:  fn,
		})
	}

	for _, op := range ops.Ops() {
		if !ops.Supports(ring, op) {
			continue
		}
		update, _ := ops.UpdateDenseSparse(ring, op)
		add(FamilyUpdate, op, ShapeDense, ShapeSparse, update)
		binary, _ := ops.BinaryDenseSparse(ring, op)
		add(FamilyBinary, op, ShapeDense, ShapeSparse, binary)
		supdate, _ := ops.UpdateSparseDense(ring, op)
		add(FamilyUpdate, op, ShapeSparse, ShapeDense, supdate)
		sbinary, _ := ops.BinarySparseDense(ring, op)
		add(FamilyBinary, op, ShapeSparse, ShapeDense, sbinary)
	}
	add(FamilyDot, 0, ShapeDense, ShapeSparse, ops.DotDenseSparse(ring))
	add(FamilyDot, 0, ShapeSparse, ShapeDense, ops.DotSparseDense(ring))
	add(FamilyScale, 0, ShapeSparse, ShapeScalar, ops.Scale(ring))
	add(FamilyNegate, 0, ShapeSparse, ShapeNone, ops.Negate(ring))
	add(FamilyMap, 0, ShapeSparse, ShapeNone, ops.Mapper[E](ops.MapAll[E]))
	add(FamilyMapActive, 0, ShapeSparse, ShapeNone, ops.Mapper[E](ops.MapActive[E]))
	add(FamilyZipMap, 0, ShapeSparse, ShapeSparse, ops.ZipMapper[E](ops.ZipMap[E]))
	add(FamilyCopy, 0, ShapeSparse, ShapeNone, (*sparse.Vector[E]).Copy)
	add(FamilyMapPairs, 0, ShapeSparse, ShapeNone, ops.PairMapper[E](ops.MapPairs[E]))
	add(FamilyMapActivePairs, 0, ShapeSparse, ShapeNone, ops.PairMapper[E](ops.MapActivePairs[E]))

	for _, reg := range regs {
		if err := r.Register(reg.key, reg.fn); err != nil {
			r.opts.logger.LogRegister(kind.String(), 0, err)
			return err
		}
	}
	r.opts.logger.LogRegister(kind.String(), len(regs), nil)
	return nil
}
