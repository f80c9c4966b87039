package scalar

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Int32 is the ring of int32 values.
type Int32 struct{ arith[int32] }

func (Int32) Kind() Kind { return KindInt32 }

// Mod returns the remainder of a/b, truncated toward zero.
func (Int32) Mod(a, b int32) int32 { return a % b }

// Pow returns a raised to b.
func (Int32) Pow(a, b int32) int32 { return ipow(a, b) }

func (r Int32) Hash(a int32) uint64 {
	var buf [binary.MaxVarintLen64]byte
	return fingerprint(r.AppendBinary(buf[:0], a))
}

func (Int32) AppendBinary(dst []byte, a int32) []byte {
	return binary.AppendVarint(dst, int64(a))
}

func (Int32) DecodeBinary(src []byte) (int32, int, error) {
	x, n := binary.Varint(src)
	if n <= 0 {
		return 0, 0, ErrShortBuffer
	}
	if x < math.MinInt32 || x > math.MaxInt32 {
		return 0, 0, fmt.Errorf("scalar: value %d overflows int32", x)
	}
	return int32(x), n, nil
}

// Int64 is the ring of int64 values.
type Int64 struct{ arith[int64] }

func (Int64) Kind() Kind { return KindInt64 }

// Mod returns the remainder of a/b, truncated toward zero.
func (Int64) Mod(a, b int64) int64 { return a % b }

// Pow returns a raised to b.
func (Int64) Pow(a, b int64) int64 { return ipow(a, b) }

func (r Int64) Hash(a int64) uint64 {
	var buf [binary.MaxVarintLen64]byte
	return fingerprint(r.AppendBinary(buf[:0], a))
}

func (Int64) AppendBinary(dst []byte, a int64) []byte {
	return binary.AppendVarint(dst, a)
}

func (Int64) DecodeBinary(src []byte) (int64, int, error) {
	x, n := binary.Varint(src)
	if n <= 0 {
		return 0, 0, ErrShortBuffer
	}
	return x, n, nil
}
