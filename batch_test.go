package hashvec

import (
	"context"
	"testing"

	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchInput(t *testing.T, n, count int) (*dense.Vector[int64], []*sparse.Vector[int64]) {
	t.Helper()
	ring := scalar.Int64{}
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	vs := make([]*sparse.Vector[int64], count)
	for k := range vs {
		v, err := sparse.New[int64](ring, n)
		require.NoError(t, err)
		v.MustSet(k%n, 1)
		vs[k] = v
	}
	return dense.New(data), vs
}

func TestDotMany(t *testing.T) {
	d, vs := batchInput(t, 8, 20)

	for _, c := range []int{0, 1, 3, 64} {
		out, err := DotMany(context.Background(), nil, d, vs, WithConcurrency(c))
		require.NoError(t, err)
		require.Len(t, out, len(vs))
		for k, x := range out {
			assert.Equal(t, int64(k%8), x)
		}
	}

	t.Run("Empty", func(t *testing.T) {
		out, err := DotMany(context.Background(), nil, d, nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		bad, err := sparse.New[int64](scalar.Int64{}, 3)
		require.NoError(t, err)
		metrics := &BasicMetricsCollector{}
		reg := Default.With(WithMetricsCollector(metrics))

		_, err = DotMany(context.Background(), reg, d, append(vs[:2:2], bad), WithConcurrency(1))
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Contains(t, err.Error(), "item 2")

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.BatchCount)
		assert.Equal(t, int64(3), stats.BatchItems)
		assert.Equal(t, int64(1), stats.BatchFailed)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := DotMany(ctx, nil, d, vs)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := DotMany(context.Background(), NewRegistry(), d, vs)
		var uo *ErrUnsupportedOperator
		require.ErrorAs(t, err, &uo)
	})
}
