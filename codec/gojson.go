package codec

import (
	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/hashvec/sparse"
)

// GoJSON encodes sparse.Snapshot values with github.com/goccy/go-json.
//
// A snapshot encodes as {"length":n,"indices":[...],"values":[...]} with
// indices ascending. The bytes match JSON, so either codec decodes what the
// other wrote. It is the Default codec.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return "go-json" }

// AppendSparse appends the JSON snapshot of v to dst.
func AppendSparse[E any](dst []byte, v *sparse.Vector[E]) ([]byte, error) {
	b, err := gojson.Marshal(v.Snapshot())
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}
