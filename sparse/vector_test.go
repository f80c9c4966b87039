package sparse

import (
	"errors"
	"math/big"
	"testing"

	"github.com/hupe1980/hashvec/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFloat64(t *testing.T, n int) *Vector[float64] {
	t.Helper()
	v, err := New[float64](scalar.Float64{}, n)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	v := newFloat64(t, 5)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 0, v.ActiveSize())
	assert.Equal(t, 0.0, v.Default())

	_, err := New[float64](scalar.Float64{}, -1)
	var il *ErrInvalidLength
	require.ErrorAs(t, err, &il)
	assert.Equal(t, -1, il.Length)
}

func TestGetSet(t *testing.T) {
	v := newFloat64(t, 10)

	for i := 0; i < 10; i++ {
		x := float64(i*i) + 0.5
		require.NoError(t, v.Set(i, x))
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}
	assert.Equal(t, 10, v.ActiveSize())

	t.Run("Default for inactive", func(t *testing.T) {
		w := newFloat64(t, 3)
		got, err := w.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})
}

func TestSetOutOfRange(t *testing.T) {
	v := newFloat64(t, 4)
	require.NoError(t, v.Set(1, 2))
	before := v.Copy()

	for _, i := range []int{-1, 4, 100} {
		err := v.Set(i, 9)
		var oor *ErrIndexOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, i, oor.Index)
		assert.Equal(t, 4, oor.Length)

		_, err = v.Get(i)
		assert.True(t, errors.As(err, &oor))
	}

	assert.True(t, v.Equal(before))
	assert.Equal(t, 1, v.ActiveSize())
}

func TestAtPanics(t *testing.T) {
	v := newFloat64(t, 2)
	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.MustSet(-1, 1) })
	v.MustSet(1, 3)
	assert.Equal(t, 3.0, v.At(1))
}

func TestActive(t *testing.T) {
	v := newFloat64(t, 100)
	want := map[int]float64{3: 1, 50: 2, 99: 3}
	for i, x := range want {
		require.NoError(t, v.Set(i, x))
	}

	got := map[int]float64{}
	for i, x := range v.Active() {
		got[i] = x
	}
	assert.Equal(t, want, got)

	slotted := map[int]float64{}
	for slot := 0; slot < v.IterableSize(); slot++ {
		if v.IsActive(slot) {
			slotted[v.IndexAt(slot)] = v.ValueAt(slot)
		}
	}
	assert.Equal(t, want, slotted)
	assert.GreaterOrEqual(t, v.IterableSize(), v.ActiveSize())
}

func TestCopyIsIndependent(t *testing.T) {
	v := newFloat64(t, 5)
	require.NoError(t, v.Set(1, 1))

	c := v.Copy()
	assert.True(t, c.Equal(v))

	require.NoError(t, c.Set(1, 10))
	require.NoError(t, c.Set(2, 20))

	x, _ := v.Get(1)
	assert.Equal(t, 1.0, x)
	x, _ = v.Get(2)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1, v.ActiveSize())
	assert.False(t, c.Equal(v))
}

func TestEqual(t *testing.T) {
	a := newFloat64(t, 5)
	b := newFloat64(t, 5)
	assert.True(t, a.Equal(b))

	require.NoError(t, a.Set(2, 0))
	assert.True(t, a.Equal(b), "explicit default equals absent")
	assert.True(t, b.Equal(a))

	require.NoError(t, b.Set(4, 1))
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	require.NoError(t, a.Set(4, 1))
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(newFloat64(t, 6)))
	assert.False(t, a.Equal(nil))
	assert.True(t, a.Equal(a))
}

func TestHashConsistency(t *testing.T) {
	a := newFloat64(t, 5)
	require.NoError(t, a.Set(2, 0))
	require.NoError(t, a.Set(3, 7))

	b := newFloat64(t, 5)
	require.NoError(t, b.Set(3, 7))

	require.True(t, a.Equal(b))
	require.NotEqual(t, a.ActiveSize(), b.ActiveSize(), "activation patterns must differ for this check")
	assert.Equal(t, a.Hash(), b.Hash(), "differing ActiveSize must not break hash consistency")

	t.Run("Order independent", func(t *testing.T) {
		small := newFloat64(t, 1000)
		large, err := New[float64](scalar.Float64{}, 1000, WithInitialCapacity(500))
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			require.NoError(t, small.Set(i*37%1000, float64(i)+1))
			require.NoError(t, large.Set(i*37%1000, float64(i)+1))
		}
		assert.NotEqual(t, small.IterableSize(), large.IterableSize())
		assert.Equal(t, small.Hash(), large.Hash())
	})

	t.Run("Distinguishes values and indices", func(t *testing.T) {
		c := newFloat64(t, 5)
		require.NoError(t, c.Set(3, 8))
		assert.NotEqual(t, b.Hash(), c.Hash())

		d := newFloat64(t, 5)
		require.NoError(t, d.Set(2, 7))
		assert.NotEqual(t, b.Hash(), d.Hash())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, newFloat64(t, 3).Hash(), newFloat64(t, 3).Hash())
	})
}

func TestSupport(t *testing.T) {
	v := newFloat64(t, 10)
	require.NoError(t, v.Set(1, 0))
	require.NoError(t, v.Set(4, 2))
	require.NoError(t, v.Set(7, -1))

	rb, err := v.Support()
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 7}, rb.ToArray())
}

func TestString(t *testing.T) {
	v := newFloat64(t, 5)
	require.NoError(t, v.Set(3, 7))
	require.NoError(t, v.Set(1, 0.5))
	assert.Equal(t, "SparseVector(5)[1:0.5 3:7]", v.String())
	assert.Equal(t, "SparseVector(0)[]", newFloat64(t, 0).String())
}

func TestToDense(t *testing.T) {
	v := newFloat64(t, 4)
	require.NoError(t, v.Set(2, 3))
	assert.Equal(t, []float64{0, 0, 3, 0}, v.ToDense().Slice())
}

func TestConstructors(t *testing.T) {
	t.Run("Fill", func(t *testing.T) {
		v, err := Fill[int32](scalar.Int32{}, 4, 7)
		require.NoError(t, err)
		assert.Equal(t, 4, v.ActiveSize())
		assert.Equal(t, int32(7), v.At(3))
	})

	t.Run("Tabulate", func(t *testing.T) {
		v, err := Tabulate[int64](scalar.Int64{}, 5, func(i int) int64 { return int64(i * 2) })
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 2, 4, 6, 8}, v.ToDense().Slice())
		assert.Equal(t, 5, v.ActiveSize())

		_, err = Tabulate[int64](scalar.Int64{}, -2, func(int) int64 { return 0 })
		assert.Error(t, err)
	})

	t.Run("FromSlice", func(t *testing.T) {
		v := FromSlice[complex128](scalar.Complex128{}, 1, 2i, 3)
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 2i, v.At(1))
	})

	t.Run("FromPairs", func(t *testing.T) {
		v, err := FromPairs[float64](scalar.Float64{}, 6,
			Entry[float64]{Index: 1, Value: 1},
			Entry[float64]{Index: 5, Value: 2},
			Entry[float64]{Index: 1, Value: 3},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, v.ActiveSize())
		assert.Equal(t, 3.0, v.At(1))

		_, err = FromPairs[float64](scalar.Float64{}, 2, Entry[float64]{Index: 2, Value: 1})
		var oor *ErrIndexOutOfRange
		assert.ErrorAs(t, err, &oor)
	})

	t.Run("BigInt", func(t *testing.T) {
		v, err := New[*big.Int](scalar.BigInt{}, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, v.At(0).Sign())
		require.NoError(t, v.Set(2, big.NewInt(9)))
		assert.Equal(t, "SparseVector(3)[2:9]", v.String())
	})
}

func TestSnapshot(t *testing.T) {
	v := newFloat64(t, 8)
	require.NoError(t, v.Set(6, 1))
	require.NoError(t, v.Set(2, 0))
	require.NoError(t, v.Set(4, 3))

	s := v.Snapshot()
	assert.Equal(t, 8, s.Length)
	assert.Equal(t, []int{2, 4, 6}, s.Indices)
	assert.Equal(t, []float64{0, 3, 1}, s.Values)

	w, err := FromSnapshot[float64](scalar.Float64{}, s)
	require.NoError(t, err)
	assert.True(t, w.Equal(v))
	assert.Equal(t, v.ActiveSize(), w.ActiveSize(), "activation pattern survives")

	_, err = FromSnapshot[float64](scalar.Float64{}, Snapshot[float64]{Length: 2, Indices: []int{0}})
	assert.Error(t, err)
}

func TestCheckLengths(t *testing.T) {
	assert.NoError(t, CheckLengths(3, 3))
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, CheckLengths(3, 4), &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 4, dm.Actual)
	assert.Equal(t, "dimension mismatch: expected 3, got 4", dm.Error())
}
