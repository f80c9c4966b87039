package kernel

import (
	"os"
	"strings"

	"golang.org/x/sys/cpu"
)

// Impl identifies a kernel implementation.
type Impl uint8

const (
	// Generic is the pure Go implementation.
	Generic Impl = iota
	// Accelerated gathers active slots and reduces them with vek.
	Accelerated
)

func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "accelerated":
		return Accelerated, true
	default:
		return Generic, false
	}
}

// Package-level state, set once by init.
var (
	activeImpl  Impl
	hasOverride bool
	hasAVX2FMA  bool
)

func init() {
	hasAVX2FMA = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	initCapabilities()
}

func initCapabilities() {
	activeImpl = selectBest()
	hasOverride = false
	if override := os.Getenv("HASHVEC_KERNEL"); override != "" {
		if impl, ok := ParseImpl(override); ok && isAvailable(impl) {
			activeImpl = impl
			hasOverride = true
		}
	}
	use(activeImpl)
}

func isAvailable(impl Impl) bool {
	switch impl {
	case Generic:
		return true
	case Accelerated:
		// vek runs everywhere; it only pays off with AVX2+FMA.
		return true
	default:
		return false
	}
}

func selectBest() Impl {
	if hasAVX2FMA {
		return Accelerated
	}
	return Generic
}

// ActiveImpl returns the selected implementation.
func ActiveImpl() Impl { return activeImpl }

// IsOverridden reports whether HASHVEC_KERNEL chose the implementation.
func IsOverridden() bool { return hasOverride }

// HasAVX2FMA reports whether the CPU supports AVX2 and FMA.
func HasAVX2FMA() bool { return hasAVX2FMA }
