// Package testutil provides testing utilities for sbbf.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic keys and hashes and 64-byte aligned buffers.
//
// # Keys and Hashes
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1000, 16)     // random 16-byte keys
//	hashes := testutil.Hash(keys)  // xxhash, as Parquet writers do
//
// Members and non-members that never collide on the key:
//
//	in := testutil.KeyHashes("member", 1000)
//	out := testutil.KeyHashes("probe", 1000)
//
// # Buffers
//
//	buf := testutil.AlignedBuffer(sbbf.NumBytes(16, 1000))
package testutil
