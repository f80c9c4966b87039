package sparse

import "fmt"

// ErrIndexOutOfRange indicates an index outside [0, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Length)
}

// ErrDimensionMismatch indicates two operands of different length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidLength indicates a negative vector length.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: %d", e.Length)
}

// CheckLengths returns ErrDimensionMismatch unless a == b.
func CheckLengths(a, b int) error {
	if a != b {
		return &ErrDimensionMismatch{Expected: a, Actual: b}
	}
	return nil
}
