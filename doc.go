// Package hashvec provides sparse vectors backed by an open-addressed hash
// table and the arithmetic between them and dense vectors.
//
// # Quick Start
//
//	s, _ := sparse.New[float64](scalar.Float64{}, 5)
//	_ = s.Set(1, 10)
//	_ = s.Set(3, 20)
//
//	d := dense.New([]float64{1, 2, 3, 4, 5})
//
//	add, _ := hashvec.BindUpdateDenseSparse[float64](nil, ops.OpAdd)
//	_ = add(d, s) // d = [1 12 3 24 5]
//
//	dot, _ := hashvec.BindDotSparseDense[float64](nil)
//	x, _ := dot(s, d)
//
// # Dispatch
//
// Operators are stored in a Registry keyed by family, element-wise operator,
// operand shapes and element kind. Default is populated for every built-in
// element kind when the package is initialized and sealed afterwards.
// Combinations an element kind cannot support are never registered:
//
//   - mod is undefined for complex128
//   - pow is undefined for *big.Int
//
// Binding one of them returns ErrUnsupportedOperator. A bound function never
// inspects types at call time.
//
// # Observability
//
// Registries log through a slog-backed Logger and report to a
// MetricsCollector. Both are no-ops on Default; use Registry.With to obtain a
// view with other settings:
//
//	metrics := &hashvec.BasicMetricsCollector{}
//	reg := hashvec.Default.With(
//	    hashvec.WithLogger(hashvec.NewJSONLogger(slog.LevelDebug)),
//	    hashvec.WithMetricsCollector(metrics),
//	)
//
// # Batch evaluation
//
// DotMany evaluates one dense vector against many sparse vectors in parallel
// with a bounded number of workers.
//
// # Kernels
//
// float32 and float64 dot products run on gather kernels chosen once at
// startup from the CPU features. Set HASHVEC_KERNEL=generic to force the
// portable loop.
package hashvec
