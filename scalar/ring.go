package scalar

import (
	"errors"
	"math/big"

	farm "github.com/dgryski/go-farm"
)

// ErrShortBuffer is returned when decoding runs out of input.
var ErrShortBuffer = errors.New("scalar: short buffer")

// Ring is the arithmetic every element kind provides.
// Implementations are stateless and safe for concurrent use.
type Ring[E any] interface {
	Kind() Kind
	Zero() E
	One() E
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Div(a, b E) E
	Neg(a E) E
	Equal(a, b E) bool

	// Hash returns a hash consistent with Equal.
	Hash(a E) uint64

	// AppendBinary appends the wire encoding of a to dst.
	AppendBinary(dst []byte, a E) []byte
	// DecodeBinary decodes one value from src and returns it with the
	// number of bytes consumed.
	DecodeBinary(src []byte) (E, int, error)
}

// Modular is implemented by rings that define a remainder.
type Modular[E any] interface {
	Ring[E]
	Mod(a, b E) E
}

// Powered is implemented by rings that define exponentiation.
type Powered[E any] interface {
	Ring[E]
	Pow(a, b E) E
}

type number interface {
	~int32 | ~int64 | ~float32 | ~float64 | ~complex128
}

// arith implements the operator-backed part of Ring for built-in numbers.
type arith[E number] struct{}

func (arith[E]) Zero() E { return 0 }
func (arith[E]) One() E { return 1 }
func (arith[E]) Add(a, b E) E { return a + b }
func (arith[E]) Sub(a, b E) E { return a - b }
func (arith[E]) Mul(a, b E) E { return a * b }
func (arith[E]) Div(a, b E) E { return a / b }
func (arith[E]) Neg(a E) E { return -a }
func (arith[E]) Equal(a, b E) bool { return a == b }

func fingerprint(b []byte) uint64 {
	return farm.Fingerprint64(b)
}

// ipow computes base^exp by repeated squaring.
// Negative exponents truncate to 0 except for the units 1 and -1.
func ipow[E ~int32 | ~int64](base, exp E) E {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	result := E(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

var (
	_ Modular[int32]      = Int32{}
	_ Powered[int32]      = Int32{}
	_ Modular[int64]      = Int64{}
	_ Powered[int64]      = Int64{}
	_ Modular[float32]    = Float32{}
	_ Powered[float32]    = Float32{}
	_ Modular[float64]    = Float64{}
	_ Powered[float64]    = Float64{}
	_ Modular[*big.Int]   = BigInt{}
	_ Powered[complex128] = Complex128{}
)
