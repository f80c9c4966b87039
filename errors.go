package hashvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hashvec/ops"
	"github.com/hupe1980/hashvec/sparse"
)

// Errors returned by the vector and operator packages, re-exported so
// callers can match them without importing those packages.
type (
	ErrIndexOutOfRange     = sparse.ErrIndexOutOfRange
	ErrDimensionMismatch   = sparse.ErrDimensionMismatch
	ErrInvalidLength       = sparse.ErrInvalidLength
	ErrUnsupportedOperator = ops.ErrUnsupportedOperator
)

var (
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("registry is sealed")
)

// ErrDuplicateKey indicates a second registration for the same key.
type ErrDuplicateKey struct {
	Key Key
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate registration for %s", e.Key)
}

// ErrTypeMismatch indicates a registry entry whose function type does not
// match the binding that requested it.
type ErrTypeMismatch struct {
	Key  Key
	Want string
	Got  string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("entry for %s has type %s, want %s", e.Key, e.Got, e.Want)
}
