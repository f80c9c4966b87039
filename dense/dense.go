// Package dense provides the dense vector the sparse operators interoperate with.
//
// A Vector is a strided view: element i lives at data[offset+i*stride].
// Views let operators write into sub-ranges of a larger buffer.
package dense

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hashvec/scalar"
)

// ErrInvalidView is returned when a view does not fit its backing slice.
var ErrInvalidView = errors.New("dense: invalid view")

// Vector is a dense vector over a strided slice.
type Vector[E any] struct {
	data   []E
	offset int
	stride int
	length int
}

// New wraps data as a contiguous vector without copying.
func New[E any](data []E) *Vector[E] {
	return &Vector[E]{data: data, stride: 1, length: len(data)}
}

// Zeros returns a contiguous vector of n copies of the ring's zero.
func Zeros[E any](ring scalar.Ring[E], n int) *Vector[E] {
	data := make([]E, n)
	zero := ring.Zero()
	for i := range data {
		data[i] = zero
	}
	return New(data)
}

// View returns the vector of n elements starting at offset with the given stride.
func View[E any](data []E, offset, stride, n int) (*Vector[E], error) {
	if n < 0 || offset < 0 || stride < 1 {
		return nil, fmt.Errorf("%w: offset=%d stride=%d length=%d", ErrInvalidView, offset, stride, n)
	}
	if n > 0 && offset+(n-1)*stride >= len(data) {
		return nil, fmt.Errorf("%w: last element %d beyond backing length %d", ErrInvalidView, offset+(n-1)*stride, len(data))
	}
	return &Vector[E]{data: data, offset: offset, stride: stride, length: n}, nil
}

// Len returns the number of elements.
func (v *Vector[E]) Len() int { return v.length }

// Data returns the backing slice, shared with the vector.
func (v *Vector[E]) Data() []E { return v.data }

// Offset returns the position of element 0 in Data.
func (v *Vector[E]) Offset() int { return v.offset }

// Stride returns the distance in Data between consecutive elements.
func (v *Vector[E]) Stride() int { return v.stride }

// At returns element i. It panics if i is out of range.
func (v *Vector[E]) At(i int) E {
	if uint(i) >= uint(v.length) {
		panic(fmt.Sprintf("dense: index %d out of range [0, %d)", i, v.length))
	}
	return v.data[v.offset+i*v.stride]
}

// Set stores x at element i. It panics if i is out of range.
func (v *Vector[E]) Set(i int, x E) {
	if uint(i) >= uint(v.length) {
		panic(fmt.Sprintf("dense: index %d out of range [0, %d)", i, v.length))
	}
	v.data[v.offset+i*v.stride] = x
}

// Slice returns the elements in logical order as a new slice.
func (v *Vector[E]) Slice() []E {
	out := make([]E, v.length)
	for i, j := 0, v.offset; i < v.length; i, j = i+1, j+v.stride {
		out[i] = v.data[j]
	}
	return out
}

// Copy returns a contiguous copy of v.
func (v *Vector[E]) Copy() *Vector[E] {
	return New(v.Slice())
}

func (v *Vector[E]) String() string {
	return fmt.Sprintf("DenseVector%v", v.Slice())
}
