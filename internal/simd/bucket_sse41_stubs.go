//go:build !noasm && amd64

package simd

import "unsafe"

//go:noescape
func containsSSE41(buf unsafe.Pointer, numBuckets uint64, hash uint64) bool

//go:noescape
func insertSSE41(buf unsafe.Pointer, numBuckets uint64, hash uint64) bool
