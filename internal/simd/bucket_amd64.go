//go:build amd64 && !noasm

package simd

import "unsafe"

const asmEnabled = true

// The AVX2 kernel keeps the whole bucket in one YMM register and answers
// the subset test with a single VPTEST. The SSE4.1 kernel splits the
// bucket in two XMM halves and has no variable shift, so it builds the
// per-lane powers of two through the float32 exponent field.

func containsISA(isa ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	switch isa {
	case AVX2:
		return containsAVX2(buf, uint64(numBuckets), hash)
	case SSE41:
		return containsSSE41(buf, uint64(numBuckets), hash)
	default:
		return containsGeneric(buf, numBuckets, hash)
	}
}

func insertISA(isa ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	switch isa {
	case AVX2:
		return insertAVX2(buf, uint64(numBuckets), hash)
	case SSE41:
		return insertSSE41(buf, uint64(numBuckets), hash)
	default:
		return insertGeneric(buf, numBuckets, hash)
	}
}
