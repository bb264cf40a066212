// Package mem provides cache-line aligned byte buffers.
//
// # Aligned Allocation
//
// Filter buffers must start on a 64-byte boundary. Go does not promise
// that for make([]byte, n), so tests, examples and benchmarks allocate
// through AllocAligned. The filter operations themselves never allocate;
// they only use Offset to check a caller's buffer.
package mem
