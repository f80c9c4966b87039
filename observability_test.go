package hashvec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hupe1980/hashvec/ops"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := Default.With(WithLogger(logger))

	_, err := BindUpdateDenseSparse[complex128](reg, ops.OpMod)
	require.Error(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "lookup failed", rec["msg"])
	assert.Equal(t, "update.mod(dense,sparse)/complex128", rec["key"])
	assert.Equal(t, "WARN", rec["level"])

	buf.Reset()
	logger.WithKey(Key{Family: FamilyDot, Elem: scalar.KindInt64}).WithCount(3).
		LogBatch(context.Background(), 3, 1, errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "batch failed", rec["msg"])
	assert.Equal(t, "dot", rec["family"])
	assert.Equal(t, "int64", rec["elem"])
	assert.Equal(t, float64(3), rec["count"])
	assert.Equal(t, float64(1), rec["failed"])

	buf.Reset()
	r := NewRegistry(WithLogger(logger))
	require.NoError(t, RegisterRing[int32](r, scalar.Int32{}))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "register completed", rec["msg"])
	assert.Equal(t, float64(r.Len()), rec["entries"])
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() {
		logger.LogLookup(Key{}, errors.New("x"))
		logger.LogRegister("int32", 1, nil)
	})
}

func TestOptionsNil(t *testing.T) {
	r := NewRegistry(WithLogger(nil), WithMetricsCollector(nil), nil)
	assert.NotNil(t, r.opts.logger)
	assert.IsType(t, NoopMetricsCollector{}, r.opts.metricsCollector)

	r = r.With(WithLogLevel(slog.LevelError))
	assert.True(t, r.opts.logger.Enabled(context.Background(), slog.LevelError))
	assert.False(t, r.opts.logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Equal(t, BasicMetricsStats{}, m.GetStats())

	m.RecordLookup(Key{}, nil)
	m.RecordLookup(Key{}, errors.New("miss"))
	m.RecordBatch(10, 2, 4*time.Millisecond)
	m.RecordBatch(6, 0, 2*time.Millisecond)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupMisses)
	assert.Equal(t, int64(2), stats.BatchCount)
	assert.Equal(t, int64(16), stats.BatchItems)
	assert.Equal(t, int64(2), stats.BatchFailed)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.BatchAvgNanos)
}
