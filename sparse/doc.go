// Package sparse implements a sparse vector backed by an open-addressed hash
// table from indices to values.
//
// Absent indices read as the ring's zero. Setting an index activates its slot,
// even when the value equals zero; equality and hashing treat such entries as
// absent, so two vectors with the same effective mapping compare and hash equal
// regardless of which indices were touched.
//
// # Usage
//
//	v, _ := sparse.New[float64](scalar.Float64{}, 5)
//	_ = v.Set(3, 7)
//	x, _ := v.Get(3) // 7
//	for i, x := range v.Active() {
//	    fmt.Println(i, x) // store order, not index order
//	}
//
// A Vector is not safe for concurrent mutation. Readers may share a vector
// that nobody writes to.
package sparse
