package kernel

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which kernel implementation the tests exercise.
func TestMain(m *testing.M) {
	fmt.Printf("=== Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("HASHVEC_KERNEL=%q\n", os.Getenv("HASHVEC_KERNEL"))
	fmt.Printf("Active: %s\n", ActiveImpl())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("AVX2+FMA: %v\n", HasAVX2FMA())
	fmt.Printf("==========================\n\n")

	os.Exit(m.Run())
}
