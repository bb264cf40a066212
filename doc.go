// Package sbbf implements split block bloom filters that are bit-for-bit
// compatible with the Parquet bloom filter format.
//
// The package owns the bit-level algorithm only. Callers allocate the
// filter buffer, keep it alive, and hash their keys (Parquet uses 64-bit
// xxHash). A buffer must start on a 64-byte boundary and be a whole number
// of 32-byte buckets; every operation reads or writes exactly one bucket.
//
// # Quick Start
//
// buf is caller-owned, for example a bloom filter section read from a
// Parquet file or sbbf.NumBytes(16, n) bytes from an aligned allocator.
//
//	f := sbbf.New()
//	seen, err := f.Insert(buf, xxhash.Sum64(key))
//	ok, err := f.Contains(buf, xxhash.Sum64(key))
//
// # Entry Points
//
// There are three ways to run an operation, from safest to fastest:
//
//	f.Insert(buf, h)               // validates buf on every call
//	b, _ := sbbf.NewBuffer(buf)    // validate once...
//	f.InsertBuffer(b, h)           // ...then never again
//	f.InsertUnchecked(p, n, h)     // raw pointer, caller guarantees layout
//
// Checked calls return a *BufferError wrapping ErrEmptyBuffer,
// ErrMisalignedBuffer, ErrBufferLength or ErrBufferTooLarge and never touch
// memory when they fail. The unchecked calls do no validation at all.
//
// Insert always reports whether the key was already present, which lets
// callers deduplicate without a separate Contains.
//
// # Backends
//
// The fastest backend for the CPU is chosen once, on first use:
//
//	amd64: avx2, sse4.1, generic
//	arm64: neon, generic
//	other: generic
//
// All backends produce identical bytes. Building with the noasm tag forces
// the generic backend. NewWithBackend pins a specific one.
//
// # Concurrency
//
// A Filter is stateless and safe for concurrent use. Buffers are not
// synchronized: concurrent calls that may touch the same bucket, where at
// least one is an insert, race. Calls that touch different buckets never
// interfere. InsertParallel uses this to insert with several goroutines,
// giving each one a disjoint range of buckets.
package sbbf
