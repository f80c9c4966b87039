package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/hashvec"
	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
	"github.com/hupe1980/hashvec/testutil"
)

func main() {
	seed := int64(4711)
	dim := 1 << 16
	size := 5000
	density := 0.005

	rng := testutil.NewRNG(seed)
	ring := scalar.Float64{}

	fmt.Println("--- Build ---")
	fmt.Println("Dimension:", dim)
	fmt.Println("Size:", size)

	start := time.Now()

	vs := make([]*sparse.Vector[float64], size)
	for i := range vs {
		vs[i] = testutil.RandomSparse[float64](rng, ring, dim, density, testutil.Float64Gen)
	}

	end := time.Since(start)

	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	d := dense.New(rng.UniformDense(dim))

	fmt.Println("--- DotMany ---")

	start = time.Now()

	out, err := hashvec.DotMany(context.Background(), nil, d, vs)
	if err != nil {
		log.Fatal(err)
	}

	end = time.Since(start)

	fmt.Printf("Seconds: %.4f\n", end.Seconds())
	fmt.Printf("First: %.4f Last: %.4f\n", out[0], out[len(out)-1])
}
