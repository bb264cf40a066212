//go:build !noasm && amd64

package simd

import "unsafe"

//go:noescape
func containsAVX2(buf unsafe.Pointer, numBuckets uint64, hash uint64) bool

//go:noescape
func insertAVX2(buf unsafe.Pointer, numBuckets uint64, hash uint64) bool
