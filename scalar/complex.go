package scalar

import (
	"encoding/binary"
	"math"
	"math/cmplx"
)

// Complex128 is the ring of complex128 values.
// Complex128 does not implement Modular.
type Complex128 struct{ arith[complex128] }

func (Complex128) Kind() Kind { return KindComplex128 }

// Pow returns a raised to b.
func (Complex128) Pow(a, b complex128) complex128 { return cmplx.Pow(a, b) }

func (r Complex128) Hash(a complex128) uint64 {
	re, im := real(a), imag(a)
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	var buf [16]byte
	return fingerprint(r.AppendBinary(buf[:0], complex(re, im)))
}

func (Complex128) AppendBinary(dst []byte, a complex128) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(real(a)))
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(imag(a)))
}

func (Complex128) DecodeBinary(src []byte) (complex128, int, error) {
	if len(src) < 16 {
		return 0, 0, ErrShortBuffer
	}
	re := math.Float64frombits(binary.LittleEndian.Uint64(src))
	im := math.Float64frombits(binary.LittleEndian.Uint64(src[8:]))
	return complex(re, im), 16, nil
}
