package sbbf

import (
	"time"

	"github.com/hupe1980/sbbf/internal/simd"
)

// InsertBatch inserts every hash into b in order and returns how many of
// them were already present when their turn came.
func (f *Filter) InsertBatch(b Buffer, hashes []uint64) int {
	start := time.Now()
	p := b.ptr()

	present := 0
	for _, h := range hashes {
		if simd.Insert(f.isa, p, b.n, h) {
			present++
		}
	}

	f.collector().RecordInsertBatch(len(hashes), present, time.Since(start))
	return present
}

// ContainsBatch looks up every hash in b and stores the results in dst,
// which is grown if its capacity is too small. It returns dst[:len(hashes)].
func (f *Filter) ContainsBatch(b Buffer, hashes []uint64, dst []bool) []bool {
	start := time.Now()
	p := b.ptr()

	if cap(dst) < len(hashes) {
		dst = make([]bool, len(hashes))
	}
	dst = dst[:len(hashes)]

	hits := 0
	for i, h := range hashes {
		dst[i] = simd.Contains(f.isa, p, b.n, h)
		if dst[i] {
			hits++
		}
	}

	f.collector().RecordContainsBatch(len(hashes), hits, time.Since(start))
	return dst
}
