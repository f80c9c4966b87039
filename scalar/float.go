package scalar

import (
	"encoding/binary"
	"math"
)

// Float32 is the ring of float32 values.
type Float32 struct{ arith[float32] }

func (Float32) Kind() Kind { return KindFloat32 }

// Mod returns the floating-point remainder of a/b.
func (Float32) Mod(a, b float32) float32 {
	return float32(math.Mod(float64(a), float64(b)))
}

// Pow returns a raised to b.
func (Float32) Pow(a, b float32) float32 {
	return float32(math.Pow(float64(a), float64(b)))
}

func (r Float32) Hash(a float32) uint64 {
	if a == 0 {
		a = 0 // fold -0
	}
	var buf [4]byte
	return fingerprint(r.AppendBinary(buf[:0], a))
}

func (Float32) AppendBinary(dst []byte, a float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(a))
}

func (Float32) DecodeBinary(src []byte) (float32, int, error) {
	if len(src) < 4 {
		return 0, 0, ErrShortBuffer
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(src)), 4, nil
}

// Float64 is the ring of float64 values.
type Float64 struct{ arith[float64] }

func (Float64) Kind() Kind { return KindFloat64 }

// Mod returns the floating-point remainder of a/b.
func (Float64) Mod(a, b float64) float64 { return math.Mod(a, b) }

// Pow returns a raised to b.
func (Float64) Pow(a, b float64) float64 { return math.Pow(a, b) }

func (r Float64) Hash(a float64) uint64 {
	if a == 0 {
		a = 0
	}
	var buf [8]byte
	return fingerprint(r.AppendBinary(buf[:0], a))
}

func (Float64) AppendBinary(dst []byte, a float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(a))
}

func (Float64) DecodeBinary(src []byte) (float64, int, error) {
	if len(src) < 8 {
		return 0, 0, ErrShortBuffer
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(src)), 8, nil
}
