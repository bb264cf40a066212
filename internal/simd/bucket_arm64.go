//go:build arm64 && !noasm

package simd

import "unsafe"

const asmEnabled = true

func containsISA(isa ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	if isa == NEON {
		return containsNEON(buf, uint64(numBuckets), hash)
	}
	return containsGeneric(buf, numBuckets, hash)
}

func insertISA(isa ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	if isa == NEON {
		return insertNEON(buf, uint64(numBuckets), hash)
	}
	return insertGeneric(buf, numBuckets, hash)
}
