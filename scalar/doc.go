// Package scalar defines the element kinds a vector can hold and the ring
// arithmetic the operators are written against.
//
// # Element Kinds
//
//   - Int32, Int64: machine integers, truncating division
//   - Float32, Float64: IEEE-754 floats
//   - BigInt: arbitrary-precision integers (*big.Int, treated as immutable)
//   - Complex128: complex numbers
//
// Every kind implements Ring. Optional capabilities are separate interfaces so
// that excluded combinations are never instantiated:
//
//   - Modular (Mod): every kind except Complex128
//   - Powered (Pow): every kind except BigInt
//
// # Usage
//
//	r := scalar.Float64{}
//	x := r.Add(r.One(), r.One()) // 2
//	k := scalar.KindOf[float64]() // KindFloat64
package scalar
