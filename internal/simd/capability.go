package simd

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
)

// ISA identifies a bucket kernel implementation.
//
// The set is closed: every value names a backend that is either compiled
// into the binary for the current GOARCH or not available at all.
type ISA uint8

const (
	// Generic is the portable word-at-a-time implementation. It is the
	// reference every other backend must match bit for bit.
	Generic ISA = iota
	// SSE41 represents x86-64 SSE4.1 (two 128-bit halves per bucket).
	SSE41
	// AVX2 represents x86-64 AVX2 (one 256-bit register per bucket).
	AVX2
	// NEON represents ARM64 Advanced SIMD (two 128-bit halves per bucket).
	NEON

	numISA
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE41:
		return "sse4.1"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "fallback":
		return Generic, true
	case "sse4.1", "sse41":
		return SSE41, true
	case "avx2":
		return AVX2, true
	case "neon", "asimd":
		return NEON, true
	default:
		return Generic, false
	}
}

// CPU feature flags, set by the platform-specific init functions from
// golang.org/x/sys/cpu. They are never written after package init.
var (
	hasSSE41 bool // x86-64 SSE4.1
	hasAVX2  bool // x86-64 AVX2
	hasASIMD bool // ARM64 NEON
)

// resolutions counts backend resolutions; it never exceeds one.
var resolutions atomic.Int32

// activeISA resolves the backend on first use. sync.OnceValue makes
// concurrent first callers block until the single resolution finishes.
var activeISA = sync.OnceValue(func() ISA {
	resolutions.Add(1)
	return selectBestISA()
})

// IsAvailable reports whether isa can run on this CPU in this build.
func IsAvailable(isa ISA) bool {
	if isa != Generic && !asmEnabled {
		return false
	}
	switch isa {
	case Generic:
		return true
	case SSE41:
		return hasSSE41
	case AVX2:
		return hasAVX2
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

// selectBestISA chooses the fastest available backend, most specialized first.
func selectBestISA() ISA {
	if !asmEnabled {
		return Generic
	}
	switch runtime.GOARCH {
	case "amd64":
		return selectBestAMD64()
	case "arm64":
		return selectBestARM64()
	default:
		return Generic
	}
}

func selectBestAMD64() ISA {
	if hasAVX2 {
		return AVX2
	}
	if hasSSE41 {
		return SSE41
	}
	return Generic
}

func selectBestARM64() ISA {
	if hasASIMD {
		return NEON
	}
	return Generic
}

// ActiveISA returns the backend chosen for this process.
func ActiveISA() ISA {
	return activeISA()
}

// Available returns every ISA usable on this CPU, best first. Generic is
// always the last element.
func Available() []ISA {
	isas := make([]ISA, 0, numISA)
	for _, isa := range []ISA{AVX2, SSE41, NEON} {
		if IsAvailable(isa) {
			isas = append(isas, isa)
		}
	}
	return append(isas, Generic)
}

// HasSSE41 returns true if x86-64 SSE4.1 is available.
func HasSSE41() bool {
	return hasSSE41
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
