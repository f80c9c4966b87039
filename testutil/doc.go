// Package testutil provides testing utilities for hashvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for dense slices and
// sparse vectors with uniform or Zipf-skewed activation patterns.
//
//	rng := testutil.NewRNG(seed)
//	d := rng.UniformDense(128)
//	s := testutil.RandomSparse[float64](rng, scalar.Float64{}, 128, 0.1, testutil.Float64Gen)
package testutil
