//go:build !noasm && arm64

package simd

import "unsafe"

//go:noescape
func containsNEON(buf unsafe.Pointer, numBuckets uint64, hash uint64) bool

//go:noescape
func insertNEON(buf unsafe.Pointer, numBuckets uint64, hash uint64) bool
