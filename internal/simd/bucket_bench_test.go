package simd

import (
	"math/rand"
	"testing"

	"github.com/hupe1980/sbbf/internal/mem"
)

// Benchmarks in this package are meant to be run twice to compare:
// - default build: asm enabled (every available ISA is benchmarked)
// - generic build: `-tags noasm` (forces pure-Go implementations)
//
// Examples:
//   go test ./internal/simd -run '^$' -bench . -benchmem
//   go test ./internal/simd -run '^$' -bench . -benchmem -tags noasm

const benchBuckets = 1 << 16

func benchHashes(n int) []uint64 {
	r := rand.New(rand.NewSource(1))
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

func BenchmarkInsert(b *testing.B) {
	hashes := benchHashes(4096)
	for _, isa := range Available() {
		b.Run(isa.String(), func(b *testing.B) {
			buf := mem.AllocAligned(benchBuckets * BucketSize)
			p := ptr(buf)
			b.SetBytes(BucketSize)
			b.ResetTimer()
			var sink bool
			for i := 0; i < b.N; i++ {
				sink = Insert(isa, p, benchBuckets, hashes[i&4095])
			}
			_ = sink
		})
	}
}

func BenchmarkContains(b *testing.B) {
	hashes := benchHashes(4096)
	for _, isa := range Available() {
		b.Run(isa.String(), func(b *testing.B) {
			buf := mem.AllocAligned(benchBuckets * BucketSize)
			p := ptr(buf)
			for _, h := range hashes[:2048] {
				Insert(isa, p, benchBuckets, h)
			}
			b.SetBytes(BucketSize)
			b.ResetTimer()
			var sink bool
			for i := 0; i < b.N; i++ {
				sink = Contains(isa, p, benchBuckets, hashes[i&4095])
			}
			_ = sink
		})
	}
}

func BenchmarkMask(b *testing.B) {
	var sink [8]uint32
	for i := 0; i < b.N; i++ {
		sink = Mask(uint32(i))
	}
	_ = sink
}
