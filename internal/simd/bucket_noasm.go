//go:build (!amd64 && !arm64) || noasm

package simd

import "unsafe"

// Without assembly every ISA tag runs the portable kernel. This covers
// wasm as well: the Go assembler has no WebAssembly SIMD instructions.
const asmEnabled = false

func containsISA(_ ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	return containsGeneric(buf, numBuckets, hash)
}

func insertISA(_ ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	return insertGeneric(buf, numBuckets, hash)
}
