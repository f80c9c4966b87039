package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// Binary layout:
//
//	magic       [4]byte "HVEC"
//	version     uint8
//	kind        uint8 (scalar.Kind)
//	compression uint8
//	block       [uncompressed u32][compressed u32][payload]
//
// The payload holds uvarint length, uvarint entry count, then per entry in
// index order the uvarint delta to the previous index followed by the ring
// encoding of the value.
const (
	magic         = "HVEC"
	formatVersion = 1
	headerSize    = len(magic) + 3
)

type options struct {
	compression Compression
}

// Option configures MarshalSparse.
type Option func(*options)

// WithCompression selects the block compression. Default: CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// MarshalSparse encodes the active entries of v.
func MarshalSparse[E any](v *sparse.Vector[E], optFns ...Option) ([]byte, error) {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}

	ring := v.Ring()
	snap := v.Snapshot()

	payload := binary.AppendUvarint(nil, uint64(snap.Length))
	payload = binary.AppendUvarint(payload, uint64(len(snap.Indices)))
	prev := 0
	for n, i := range snap.Indices {
		payload = binary.AppendUvarint(payload, uint64(i-prev))
		payload = ring.AppendBinary(payload, snap.Values[n])
		prev = i
	}
	if len(payload) > maxBlockSize {
		return nil, fmt.Errorf("codec: payload of %d bytes exceeds block limit", len(payload))
	}

	out := make([]byte, 0, headerSize+blockHeaderSize+len(payload))
	out = append(out, magic...)
	out = append(out, formatVersion, byte(ring.Kind()), byte(o.compression))
	return appendBlock(out, payload, o.compression)
}

// UnmarshalSparse decodes data written by MarshalSparse into a vector over
// ring.
func UnmarshalSparse[E any](ring scalar.Ring[E], data []byte) (*sparse.Vector[E], error) {
	if len(data) < headerSize || string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("%w: missing header", ErrCorrupt)
	}
	if v := data[4]; v != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}
	if k := scalar.Kind(data[5]); k != ring.Kind() {
		return nil, fmt.Errorf("%w: data holds %s, ring is %s", ErrKindMismatch, k, ring.Kind())
	}
	payload, err := readBlock(data[headerSize:], Compression(data[6]))
	if err != nil {
		return nil, err
	}

	length, m := binary.Uvarint(payload)
	if m <= 0 || length > math.MaxInt {
		return nil, fmt.Errorf("%w: bad length", ErrCorrupt)
	}
	payload = payload[m:]
	count, m := binary.Uvarint(payload)
	if m <= 0 || count > length {
		return nil, fmt.Errorf("%w: bad entry count", ErrCorrupt)
	}
	payload = payload[m:]

	// Every entry takes at least two bytes.
	pairs := make([]sparse.Entry[E], 0, min(count, uint64(len(payload)/2)))
	prev := uint64(0)
	for n := uint64(0); n < count; n++ {
		delta, m := binary.Uvarint(payload)
		if m <= 0 {
			return nil, fmt.Errorf("%w: entry %d: bad index", ErrCorrupt, n)
		}
		payload = payload[m:]
		if delta >= length || prev+delta >= length || (n > 0 && delta == 0) {
			return nil, fmt.Errorf("%w: entry %d: index out of order or range", ErrCorrupt, n)
		}
		prev += delta

		x, m, err := ring.DecodeBinary(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrCorrupt, n, err)
		}
		payload = payload[m:]
		pairs = append(pairs, sparse.Entry[E]{Index: int(prev), Value: x})
	}
	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(payload))
	}
	return sparse.FromPairs(ring, int(length), pairs...)
}
