package scalar

import (
	"fmt"
	"math/big"
)

// Kind identifies the element type of a vector.
type Kind uint8

const (
	// KindInvalid is returned by KindOf for unsupported element types.
	KindInvalid Kind = iota
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBigInt
	KindComplex128
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBigInt:
		return "bigint"
	case KindComplex128:
		return "complex128"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Kinds returns all supported element kinds.
func Kinds() []Kind {
	return []Kind{KindInt32, KindInt64, KindFloat32, KindFloat64, KindBigInt, KindComplex128}
}

// KindOf returns the kind of the element type E.
// It returns KindInvalid if E is not a supported element type.
func KindOf[E any]() Kind {
	var zero E
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case *big.Int:
		return KindBigInt
	case complex128:
		return KindComplex128
	default:
		return KindInvalid
	}
}
