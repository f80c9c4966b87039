package scalar

import (
	"encoding/binary"
	"math/big"
)

// BigInt is the ring of arbitrary-precision integers.
//
// Values are treated as immutable: every operation allocates its result and
// never modifies its operands. A nil *big.Int reads as zero.
// BigInt does not implement Powered.
type BigInt struct{}

var bigZero = new(big.Int)

func nz(a *big.Int) *big.Int {
	if a == nil {
		return bigZero
	}
	return a
}

func (BigInt) Kind() Kind { return KindBigInt }
func (BigInt) Zero() *big.Int { return new(big.Int) }
func (BigInt) One() *big.Int { return big.NewInt(1) }
func (BigInt) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(nz(a)) }

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(nz(a), nz(b)) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(nz(a), nz(b)) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(nz(a), nz(b)) }

// Div returns a/b truncated toward zero. It panics if b is zero.
func (BigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(nz(a), nz(b)) }

// Mod returns the remainder of a/b with the sign of a. It panics if b is zero.
func (BigInt) Mod(a, b *big.Int) *big.Int { return new(big.Int).Rem(nz(a), nz(b)) }

func (BigInt) Equal(a, b *big.Int) bool { return nz(a).Cmp(nz(b)) == 0 }

func (r BigInt) Hash(a *big.Int) uint64 {
	return fingerprint(r.AppendBinary(nil, a))
}

// AppendBinary encodes a as a sign byte, a uvarint magnitude length and the
// big-endian magnitude.
func (BigInt) AppendBinary(dst []byte, a *big.Int) []byte {
	a = nz(a)
	sign := byte(0)
	if a.Sign() < 0 {
		sign = 1
	}
	mag := a.Bytes()
	dst = append(dst, sign)
	dst = binary.AppendUvarint(dst, uint64(len(mag)))
	return append(dst, mag...)
}

func (BigInt) DecodeBinary(src []byte) (*big.Int, int, error) {
	if len(src) < 1 {
		return nil, 0, ErrShortBuffer
	}
	sign := src[0]
	n, m := binary.Uvarint(src[1:])
	if m <= 0 {
		return nil, 0, ErrShortBuffer
	}
	start := 1 + m
	if uint64(len(src)-start) < n {
		return nil, 0, ErrShortBuffer
	}
	end := start + int(n)
	x := new(big.Int).SetBytes(src[start:end])
	if sign == 1 {
		x.Neg(x)
	}
	return x, end, nil
}
