package dense

import (
	"math/big"
	"testing"

	"github.com/hupe1980/hashvec/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New([]float64{1, 2, 3})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, 1, v.Stride())
	assert.Equal(t, 2.0, v.At(1))

	v.Set(1, 5)
	assert.Equal(t, []float64{1, 5, 3}, v.Data())
}

func TestZeros(t *testing.T) {
	v := Zeros[float32](scalar.Float32{}, 4)
	assert.Equal(t, []float32{0, 0, 0, 0}, v.Slice())

	b := Zeros[*big.Int](scalar.BigInt{}, 2)
	require.NotNil(t, b.At(0))
	assert.Equal(t, 0, b.At(0).Sign())
}

func TestView(t *testing.T) {
	backing := []int32{0, 1, 2, 3, 4, 5, 6, 7}

	v, err := View(backing, 1, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 4, 7}, v.Slice())

	v.Set(2, 70)
	assert.Equal(t, int32(70), backing[7], "views share the backing slice")

	c := v.Copy()
	assert.Equal(t, 1, c.Stride())
	c.Set(0, 100)
	assert.Equal(t, int32(1), backing[1], "copies are independent")

	t.Run("Errors", func(t *testing.T) {
		_, err := View(backing, 1, 3, 4)
		assert.ErrorIs(t, err, ErrInvalidView)
		_, err = View(backing, 0, 0, 2)
		assert.ErrorIs(t, err, ErrInvalidView)
		_, err = View(backing, -1, 1, 2)
		assert.ErrorIs(t, err, ErrInvalidView)
	})

	t.Run("Empty", func(t *testing.T) {
		v, err := View([]int32{}, 0, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
		assert.Empty(t, v.Slice())
	})
}

func TestAtPanics(t *testing.T) {
	v := New([]float64{1})
	assert.Panics(t, func() { v.At(1) })
	assert.Panics(t, func() { v.At(-1) })
	assert.Panics(t, func() { v.Set(2, 0) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "DenseVector[1 2]", New([]int64{1, 2}).String())
}
