package sbbf

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sbbf/internal/simd"
)

// parallelChunk is how many hashes a worker inserts between cancellation checks.
const parallelChunk = 4096

// InsertParallel inserts hashes into b using up to workers goroutines and
// returns how many were already present. workers <= 0 means GOMAXPROCS.
//
// Each worker owns a contiguous range of buckets, so no two goroutines
// ever touch the same bucket and hashes landing in one bucket are applied
// in their original order. The resulting buffer and count are the same as
// for InsertBatch.
//
// ctx is checked between chunks. On cancellation the buffer holds a subset
// of the hashes and the returned count covers only the applied ones.
func (f *Filter) InsertParallel(ctx context.Context, b Buffer, hashes []uint64, workers int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p := b.ptr()

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, b.NumBuckets(), max(1, len(hashes)/parallelChunk))

	start := time.Now()

	var (
		total int
		err   error
	)
	if workers == 1 {
		total, err = f.insertRun(ctx, p, b.n, hashes)
	} else {
		total, err = f.insertShards(ctx, p, b.n, partitionByBucket(hashes, b.n, workers))
	}

	f.collector().RecordInsertBatch(len(hashes), total, time.Since(start))
	f.log().LogParallelInsert(ctx, len(hashes), workers, total, err)
	return total, err
}

func (f *Filter) insertShards(ctx context.Context, p unsafe.Pointer, numBuckets uint32, shards [][]uint64) (int, error) {
	var present atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for _, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		g.Go(func() error {
			n, err := f.insertRun(gctx, p, numBuckets, shard)
			present.Add(int64(n))
			return err
		})
	}
	err := g.Wait()
	return int(present.Load()), err
}

// insertRun applies hashes sequentially, checking ctx between chunks.
func (f *Filter) insertRun(ctx context.Context, p unsafe.Pointer, numBuckets uint32, hashes []uint64) (int, error) {
	present := 0
	for len(hashes) > 0 {
		if err := ctx.Err(); err != nil {
			return present, err
		}
		n := min(len(hashes), parallelChunk)
		for _, h := range hashes[:n] {
			if simd.Insert(f.isa, p, numBuckets, h) {
				present++
			}
		}
		hashes = hashes[n:]
	}
	return present, nil
}

// partitionByBucket splits hashes into one shard per worker. Shard w gets
// the hashes whose bucket lies in [w*n/workers, (w+1)*n/workers). The
// order of hashes within a shard is preserved.
func partitionByBucket(hashes []uint64, numBuckets uint32, workers int) [][]uint64 {
	shardOf := func(h uint64) int {
		idx := uint64(simd.BucketIndex(h, numBuckets))
		return int(idx * uint64(workers) / uint64(numBuckets))
	}

	offsets := make([]int, workers+1)
	for _, h := range hashes {
		offsets[shardOf(h)+1]++
	}
	for w := 1; w <= workers; w++ {
		offsets[w] += offsets[w-1]
	}

	sorted := make([]uint64, len(hashes))
	next := append([]int(nil), offsets[:workers]...)
	for _, h := range hashes {
		w := shardOf(h)
		sorted[next[w]] = h
		next[w]++
	}

	shards := make([][]uint64, workers)
	for w := range shards {
		shards[w] = sorted[offsets[w]:offsets[w+1]]
	}
	return shards
}
