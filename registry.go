package hashvec

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/hupe1980/hashvec/ops"
	"github.com/hupe1980/hashvec/scalar"
)

// Family groups the operators of a registry by calling convention.
type Family uint8

const (
	FamilyUpdate Family = iota
	FamilyBinary
	FamilyDot
	FamilyScale
	FamilyNegate
	FamilyMap
	FamilyMapActive
	FamilyZipMap
	FamilyCopy
	FamilyMapPairs
	FamilyMapActivePairs
)

func (f Family) String() string {
	switch f {
	case FamilyUpdate:
		return "update"
	case FamilyBinary:
		return "binary"
	case FamilyDot:
		return "dot"
	case FamilyScale:
		return "scale"
	case FamilyNegate:
		return "negate"
	case FamilyMap:
		return "map"
	case FamilyMapActive:
		return "map-active"
	case FamilyZipMap:
		return "zip-map"
	case FamilyCopy:
		return "copy"
	case FamilyMapPairs:
		return "map-pairs"
	case FamilyMapActivePairs:
		return "map-active-pairs"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// Shape is the storage layout of an operand.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeDense
	ShapeSparse
	ShapeScalar
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeDense:
		return "dense"
	case ShapeSparse:
		return "sparse"
	case ShapeScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Key identifies one registry entry. Op is only significant for the
// element-wise families (update and binary); other families use the zero Op.
type Key struct {
	Family Family
	Op     ops.Op
	Left   Shape
	Right  Shape
	Elem   scalar.Kind
}

// Operator renders the key without its element kind.
func (k Key) Operator() string {
	if k.Family == FamilyUpdate || k.Family == FamilyBinary {
		return fmt.Sprintf("%s.%s(%s,%s)", k.Family, k.Op, k.Left, k.Right)
	}
	return fmt.Sprintf("%s(%s,%s)", k.Family, k.Left, k.Right)
}

func (k Key) String() string {
	return k.Operator() + "/" + k.Elem.String()
}

func compareKeys(a, b Key) int {
	return cmp.Or(
		cmp.Compare(a.Elem, b.Elem),
		cmp.Compare(a.Family, b.Family),
		cmp.Compare(a.Op, b.Op),
		cmp.Compare(a.Left, b.Left),
		cmp.Compare(a.Right, b.Right),
	)
}

type entries struct {
	mu     sync.RWMutex
	m      map[Key]any
	sealed bool
}

// Registry maps operator keys to bound function values.
//
// A registry is filled with Register or RegisterRing and then sealed. After
// sealing it is read-only and safe for concurrent use.
type Registry struct {
	e    *entries
	opts options
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry(optFns ...Option) *Registry {
	return &Registry{
		e:    &entries{m: make(map[Key]any)},
		opts: applyOptions(defaultOptions(), optFns),
	}
}

// With returns a registry sharing r's entries with different observability
// settings. Unset options are inherited from r.
func (r *Registry) With(optFns ...Option) *Registry {
	return &Registry{
		e:    r.e,
		opts: applyOptions(r.opts, optFns),
	}
}

// Register adds fn under k.
func (r *Registry) Register(k Key, fn any) error {
	r.e.mu.Lock()
	defer r.e.mu.Unlock()

	if r.e.sealed {
		return ErrSealed
	}
	if _, ok := r.e.m[k]; ok {
		return &ErrDuplicateKey{Key: k}
	}
	r.e.m[k] = fn
	return nil
}

// Seal makes r read-only.
func (r *Registry) Seal() {
	r.e.mu.Lock()
	r.e.sealed = true
	r.e.mu.Unlock()
}

// Sealed reports whether r is read-only.
func (r *Registry) Sealed() bool {
	r.e.mu.RLock()
	defer r.e.mu.RUnlock()
	return r.e.sealed
}

// Lookup returns the entry for k, or ErrUnsupportedOperator if there is none.
func (r *Registry) Lookup(k Key) (any, error) {
	r.e.mu.RLock()
	fn, ok := r.e.m[k]
	r.e.mu.RUnlock()

	var err error
	if !ok {
		err = &ErrUnsupportedOperator{Op: k.Operator(), Kind: k.Elem}
	}
	r.opts.metricsCollector.RecordLookup(k, err)
	r.opts.logger.LogLookup(k, err)
	return fn, err
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.e.mu.RLock()
	defer r.e.mu.RUnlock()
	return len(r.e.m)
}

// Keys returns every key in a stable order.
func (r *Registry) Keys() []Key {
	r.e.mu.RLock()
	keys := make([]Key, 0, len(r.e.m))
	for k := range r.e.m {
		keys = append(keys, k)
	}
	r.e.mu.RUnlock()

	slices.SortFunc(keys, compareKeys)
	return keys
}
