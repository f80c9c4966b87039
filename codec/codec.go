// Package codec encodes sparse vectors.
//
// Two families are provided. Codec implementations (JSON, GoJSON) encode the
// sorted sparse.Snapshot of a vector and are meant for interchange.
// MarshalSparse and UnmarshalSparse produce a compact self-describing binary
// form with optional LZ4 or ZSTD block compression.
//
// Changing a codec is a breaking change for persisted bytes: older payloads
// may no longer decode.
package codec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

var (
	// ErrCorrupt is returned when encoded data is malformed or truncated.
	ErrCorrupt = errors.New("codec: corrupt data")

	// ErrKindMismatch is returned when encoded data holds a different element
	// kind than the decoding ring.
	ErrKindMismatch = errors.New("codec: element kind mismatch")
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// EncodeSparse encodes the snapshot of v with c. A nil codec means Default.
func EncodeSparse[E any](c Codec, v *sparse.Vector[E]) ([]byte, error) {
	if c == nil {
		c = Default
	}
	return c.Marshal(v.Snapshot())
}

// DecodeSparse decodes a snapshot written by EncodeSparse and rebuilds the
// vector over ring.
func DecodeSparse[E any](c Codec, ring scalar.Ring[E], data []byte) (*sparse.Vector[E], error) {
	if c == nil {
		c = Default
	}
	var s sparse.Snapshot[E]
	if err := c.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, c.Name(), err)
	}
	return sparse.FromSnapshot(ring, s)
}
