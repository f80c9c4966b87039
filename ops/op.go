package ops

import (
	"fmt"

	"github.com/hupe1980/hashvec/scalar"
)

// Op is an element-wise operator kind.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMulScalar
	OpDiv
	OpSet
	OpMod
	OpPow
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMulScalar:
		return "mul"
	case OpDiv:
		return "div"
	case OpSet:
		return "set"
	case OpMod:
		return "mod"
	case OpPow:
		return "pow"
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}

// Ops returns every element-wise operator kind.
func Ops() []Op {
	return []Op{OpAdd, OpSub, OpMulScalar, OpDiv, OpSet, OpMod, OpPow}
}

// ErrUnsupportedOperator indicates an operator that has no implementation for
// an element kind.
type ErrUnsupportedOperator struct {
	Op   string
	Kind scalar.Kind
}

func (e *ErrUnsupportedOperator) Error() string {
	return fmt.Sprintf("unsupported operator %s for %s", e.Op, e.Kind)
}

// Elementwise returns the scalar combinator for op over ring.
// OpSet returns its right operand.
func Elementwise[E any](ring scalar.Ring[E], op Op) (func(a, b E) E, error) {
	switch op {
	case OpAdd:
		return ring.Add, nil
	case OpSub:
		return ring.Sub, nil
	case OpMulScalar:
		return ring.Mul, nil
	case OpDiv:
		return ring.Div, nil
	case OpSet:
		return func(_, b E) E { return b }, nil
	case OpMod:
		if m, ok := ring.(scalar.Modular[E]); ok {
			return m.Mod, nil
		}
	case OpPow:
		if p, ok := ring.(scalar.Powered[E]); ok {
			return p.Pow, nil
		}
	}
	return nil, &ErrUnsupportedOperator{Op: op.String(), Kind: ring.Kind()}
}

// Supports reports whether op is defined for ring.
func Supports[E any](ring scalar.Ring[E], op Op) bool {
	_, err := Elementwise(ring, op)
	return err == nil
}
