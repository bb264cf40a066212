package simd

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Bucket kernels for split block bloom filters, bit-compatible with
// https://github.com/apache/parquet-format/blob/master/BloomFilter.md
//
// A filter is a run of 32-byte buckets, each read as eight little-endian
// 32-bit words. The high half of a hash picks the bucket, the low half
// picks one bit in every word of it.

const (
	// BucketSize is the size of one bucket in bytes.
	BucketSize = 32

	// MaxBuckets is the largest bucket count BucketIndex can address.
	MaxBuckets = math.MaxUint32

	salt0 = 0x47b6137b
	salt1 = 0x44974d91
	salt2 = 0x8824ad5b
	salt3 = 0xa2b7289d
	salt4 = 0x705495c7
	salt5 = 0x2df1424b
	salt6 = 0x9efc4947
	salt7 = 0x5c6bfb31
)

// Salt holds the odd constants that spread the low hash bits over the
// eight words of a bucket. The assembly kernels embed the same table.
var Salt = [8]uint32{
	0: salt0,
	1: salt1,
	2: salt2,
	3: salt3,
	4: salt4,
	5: salt5,
	6: salt6,
	7: salt7,
}

// BucketIndex maps the upper 32 bits of hash onto [0, numBuckets) by
// fixed-point multiplication instead of a modulo.
func BucketIndex(hash uint64, numBuckets uint32) uint32 {
	return uint32(((hash >> 32) * uint64(numBuckets)) >> 32)
}

// Mask returns the eight word masks for the low 32 bits of a hash. Each
// word has exactly one bit set.
func Mask(x uint32) [8]uint32 {
	return [8]uint32{
		0: 1 << ((x * salt0) >> 27),
		1: 1 << ((x * salt1) >> 27),
		2: 1 << ((x * salt2) >> 27),
		3: 1 << ((x * salt3) >> 27),
		4: 1 << ((x * salt4) >> 27),
		5: 1 << ((x * salt5) >> 27),
		6: 1 << ((x * salt6) >> 27),
		7: 1 << ((x * salt7) >> 27),
	}
}

// Contains reports whether every mask bit of hash is set in its bucket.
//
// SAFETY: buf must point to numBuckets*BucketSize readable bytes and
// numBuckets must be non-zero. Nothing is checked here.
func Contains(isa ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	return containsISA(isa, buf, numBuckets, hash)
}

// Insert sets the mask bits of hash in its bucket and reports whether they
// were all set before the call.
//
// SAFETY: same contract as Contains, and the bucket must be writable.
func Insert(isa ISA, buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	return insertISA(isa, buf, numBuckets, hash)
}

func bucketAt(buf unsafe.Pointer, numBuckets uint32, hash uint64) []byte {
	off := uintptr(BucketIndex(hash, numBuckets)) * BucketSize
	return unsafe.Slice((*byte)(unsafe.Add(buf, off)), BucketSize) //nolint:gosec // caller guarantees the bucket is in bounds
}

// containsGeneric is the portable scalar kernel. Loads go through
// encoding/binary so the byte layout is the same on big-endian hosts.
func containsGeneric(buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	b := bucketAt(buf, numBuckets, hash)
	m := Mask(uint32(hash))
	for i := range m {
		if binary.LittleEndian.Uint32(b[4*i:])&m[i] != m[i] {
			return false
		}
	}
	return true
}

func insertGeneric(buf unsafe.Pointer, numBuckets uint32, hash uint64) bool {
	b := bucketAt(buf, numBuckets, hash)
	m := Mask(uint32(hash))
	present := true
	for i := range m {
		w := binary.LittleEndian.Uint32(b[4*i:])
		if w&m[i] != m[i] {
			present = false
		}
		binary.LittleEndian.PutUint32(b[4*i:], w|m[i])
	}
	return present
}
