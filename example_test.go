package hashvec_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/hashvec"
	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/ops"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// Example_updateDenseSparse adds a sparse vector into a dense one in place.
func Example_updateDenseSparse() {
	s, err := sparse.New[float64](scalar.Float64{}, 5)
	if err != nil {
		log.Fatal(err)
	}
	_ = s.Set(1, 10)
	_ = s.Set(3, 20)

	d := dense.New([]float64{1, 2, 3, 4, 5})

	add, err := hashvec.BindUpdateDenseSparse[float64](nil, ops.OpAdd)
	if err != nil {
		log.Fatal(err)
	}
	if err := add(d, s); err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)
	fmt.Println(s)
	// Output:
	// DenseVector[1 12 3 24 5]
	// SparseVector(5)[1:10 3:20]
}

// Example_unsupportedOperator shows a combination rejected at binding time.
func Example_unsupportedOperator() {
	_, err := hashvec.BindUpdateDenseSparse[complex128](nil, ops.OpMod)
	fmt.Println(err)
	// Output: unsupported operator update.mod(dense,sparse) for complex128
}

// Example_mapActive contrasts mapping active slots with mapping every index.
func Example_mapActive() {
	v := sparse.FromSlice[int64](scalar.Int64{}, 0, 5, 0)
	w, _ := sparse.New[int64](scalar.Int64{}, 3)
	_ = w.Set(1, 5)

	inc := func(x int64) int64 { return x + 1 }
	mapActive, _ := hashvec.BindMapActive[int64](nil)
	mapAll, _ := hashvec.BindMapAll[int64](nil)

	fmt.Println(mapActive(w, inc))
	fmt.Println(mapAll(w, inc))
	fmt.Println(v.Equal(w), v.Hash() == w.Hash())
	// Output:
	// SparseVector(3)[1:6]
	// SparseVector(3)[0:1 1:6 2:1]
	// true true
}

// Example_dotMany evaluates one dense vector against several sparse vectors.
func Example_dotMany() {
	ring := scalar.Float64{}
	d := dense.New([]float64{1, 2, 3})
	vs := []*sparse.Vector[float64]{
		sparse.FromSlice[float64](ring, 1, 0, 0),
		sparse.FromSlice[float64](ring, 0, 1, 0),
		sparse.FromSlice[float64](ring, 1, 1, 1),
	}

	out, err := hashvec.DotMany(context.Background(), nil, d, vs, hashvec.WithConcurrency(2))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output: [1 2 6]
}
