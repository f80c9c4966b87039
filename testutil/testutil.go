package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/hashvec/scalar"
	"github.com/hupe1980/hashvec/sparse"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// UniformDense returns n values in range [-1, 1).
func (r *RNG) UniformDense(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()*2 - 1
	}
	return out
}

// Support returns distinct indices in [0, n), each chosen with probability
// density, in random order.
func (r *RNG) Support(n int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int
	for i := range n {
		if r.rand.Float64() < density {
			out = append(out, i)
		}
	}
	r.rand.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s; s=1.5 gives a heavy head.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}
	return n - 1
}

// ZipfIndices returns count indices in [0, n) drawn from a Zipf distribution,
// with repeats. Writing them into a vector overwrites hot indices many times.
func (r *RNG) ZipfIndices(n, count int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, count)
	for i := range out {
		out[i] = r.zipfLocked(n, s)
	}
	return out
}

// Generators for RandomSparse.
var (
	Float64Gen = func(r *RNG) float64 { return r.Float64()*2 - 1 }
	Int64Gen   = func(r *RNG) int64 { return int64(r.Intn(201) - 100) }
)

// RandomSparse returns a vector of length n whose support is drawn with the
// given density and whose values come from gen.
func RandomSparse[E any](r *RNG, ring scalar.Ring[E], n int, density float64, gen func(*RNG) E) *sparse.Vector[E] {
	support := r.Support(n, density)
	v, err := sparse.New(ring, n)
	if err != nil {
		panic(err)
	}
	for _, i := range support {
		v.MustSet(i, gen(r))
	}
	return v
}
