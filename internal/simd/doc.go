// Package simd provides the bucket kernels of split block bloom filters.
//
// # Supported Platforms
//
//   - x86-64: AVX2, SSE4.1
//   - ARM64: NEON
//   - everything else (including wasm): portable Go
//
// Runtime CPU feature detection selects the fastest implementation once per
// process. Build with -tags noasm to force the portable Go fallback.
//
// # Operations
//
//   - Bucket addressing: BucketIndex (fastrange over the high hash bits)
//   - Masking: Mask (one bit per 32-bit word, salted by the low hash bits)
//   - Kernels: Contains, Insert
//
// Every backend produces the same bytes and the same results as the
// portable implementation for every input.
package simd
