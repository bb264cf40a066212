package testutil

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/sbbf/internal/mem"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64s returns n pseudo-random hashes.
func (r *RNG) Uint64s(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// Keys returns num random keys of the given size.
func (r *RNG) Keys(num, size int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([][]byte, num)
	for i := range keys {
		keys[i] = make([]byte, size)
		_, _ = r.rand.Read(keys[i])
	}
	return keys
}

// ZipfHashes returns n hashes drawn from a pool of distinct hashes with a
// Zipfian frequency (s > 1), so a few values repeat many times. Useful for
// exercising the already-present result of Insert.
func (r *RNG) ZipfHashes(n, distinct int, s float64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool := make([]uint64, distinct)
	for i := range pool {
		pool[i] = r.rand.Uint64()
	}

	z := rand.NewZipf(r.rand, s, 1, uint64(distinct-1))
	out := make([]uint64, n)
	for i := range out {
		out[i] = pool[z.Uint64()]
	}
	return out
}

// Hash returns the 64-bit xxHash of every key.
func Hash(keys [][]byte) []uint64 {
	out := make([]uint64, len(keys))
	for i, k := range keys {
		out[i] = xxhash.Sum64(k)
	}
	return out
}

// KeyHashes returns the xxHash of the keys "<prefix>-0" to "<prefix>-<n-1>".
// Different prefixes give disjoint key sets.
func KeyHashes(prefix string, n int) []uint64 {
	out := make([]uint64, n)
	buf := make([]byte, 0, len(prefix)+24)
	for i := range out {
		buf = append(buf[:0], prefix...)
		buf = append(buf, '-')
		buf = strconv.AppendInt(buf, int64(i), 10)
		out[i] = xxhash.Sum64(buf)
	}
	return out
}

// AlignedBuffer returns a zeroed, 64-byte aligned buffer of size bytes.
func AlignedBuffer(size int) []byte {
	return mem.AllocAligned(size)
}

// MisalignedBuffer returns a zeroed buffer of size bytes starting shift
// bytes past a 64-byte boundary.
func MisalignedBuffer(size, shift int) []byte {
	return mem.AllocMisaligned(size, shift)
}
