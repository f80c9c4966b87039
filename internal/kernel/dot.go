package kernel

import (
	"sync"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Kernel function pointers, set once at init.
var (
	kernelDotSlots64 = dotSlots64Generic
	kernelDotSlots32 = dotSlots32Generic
)

func use(impl Impl) {
	switch impl {
	case Accelerated:
		kernelDotSlots64 = dotSlots64Gather
		kernelDotSlots32 = dotSlots32Gather
	default:
		kernelDotSlots64 = dotSlots64Generic
		kernelDotSlots32 = dotSlots32Generic
	}
}

// DotSlots64 returns the sum over active slots s (index[s] >= 0) of
// dense[offset+index[s]*stride] * values[s].
//
// SAFETY: Assumes len(index) == len(values) and every active index lies
// within the strided view. Callers MUST check lengths first.
func DotSlots64(dense []float64, offset, stride int, index []int, values []float64) float64 {
	return kernelDotSlots64(dense, offset, stride, index, values)
}

// DotSlots32 is DotSlots64 for float32.
func DotSlots32(dense []float32, offset, stride int, index []int, values []float32) float32 {
	return kernelDotSlots32(dense, offset, stride, index, values)
}

func dotSlots64Generic(dense []float64, offset, stride int, index []int, values []float64) float64 {
	var ret float64
	for s, i := range index {
		if i < 0 {
			continue
		}
		ret += dense[offset+i*stride] * values[s]
	}
	return ret
}

func dotSlots32Generic(dense []float32, offset, stride int, index []int, values []float32) float32 {
	var ret float32
	for s, i := range index {
		if i < 0 {
			continue
		}
		ret += dense[offset+i*stride] * values[s]
	}
	return ret
}

// Scratch buffers for the gather kernels.
var (
	scratch64Pool = sync.Pool{New: func() any { return new([]float64) }}
	scratch32Pool = sync.Pool{New: func() any { return new([]float32) }}
)

func dotSlots64Gather(dense []float64, offset, stride int, index []int, values []float64) float64 {
	xp := scratch64Pool.Get().(*[]float64)
	yp := scratch64Pool.Get().(*[]float64)
	defer scratch64Pool.Put(xp)
	defer scratch64Pool.Put(yp)

	x, y := (*xp)[:0], (*yp)[:0]
	for s, i := range index {
		if i < 0 {
			continue
		}
		x = append(x, dense[offset+i*stride])
		y = append(y, values[s])
	}
	*xp, *yp = x, y
	if len(x) == 0 {
		return 0
	}
	return vek.Dot(x, y)
}

func dotSlots32Gather(dense []float32, offset, stride int, index []int, values []float32) float32 {
	xp := scratch32Pool.Get().(*[]float32)
	yp := scratch32Pool.Get().(*[]float32)
	defer scratch32Pool.Put(xp)
	defer scratch32Pool.Put(yp)

	x, y := (*xp)[:0], (*yp)[:0]
	for s, i := range index {
		if i < 0 {
			continue
		}
		x = append(x, dense[offset+i*stride])
		y = append(y, values[s])
	}
	*xp, *yp = x, y
	if len(x) == 0 {
		return 0
	}
	return vek32.Dot(x, y)
}
