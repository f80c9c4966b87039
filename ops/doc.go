// Package ops implements the arithmetic between sparse and dense vectors.
//
// Every operator is produced by a binder that takes the element ring (and the
// operator kind where relevant) and returns a typed function value. Binders
// fail with ErrUnsupportedOperator when the ring lacks the capability, so a
// caller learns about a missing combination once, when binding, and never
// inside the loop.
//
//	add, err := ops.UpdateDenseSparse[float64](scalar.Float64{}, ops.OpAdd)
//	if err != nil {
//	    return err
//	}
//	err = add(d, s) // d[i] += s[i]
//
// Pure binary operators are derived from their in-place counterpart with
// Derive: the left operand is copied and the copy is updated.
package ops
