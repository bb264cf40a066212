package testutil

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sbbf/internal/mem"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	assert.Equal(t, a.Uint64s(16), b.Uint64s(16))
	assert.Equal(t, a.Keys(4, 8), b.Keys(4, 8))
	assert.Equal(t, int64(4711), a.Seed())

	first := a.Uint64s(1)
	a.Reset()
	a.Uint64s(16)
	a.Keys(4, 8)
	assert.Equal(t, first, a.Uint64s(1))
}

func TestKeys(t *testing.T) {
	rng := NewRNG(1)

	keys := rng.Keys(8, 16)

	require.Len(t, keys, 8)
	for _, k := range keys {
		assert.Len(t, k, 16)
	}
	assert.NotEqual(t, keys[0], keys[1])
}

func TestHash(t *testing.T) {
	keys := [][]byte{[]byte("a"), []byte("b")}

	h := Hash(keys)

	assert.Equal(t, []uint64{xxhash.Sum64String("a"), xxhash.Sum64String("b")}, h)
}

func TestKeyHashes(t *testing.T) {
	h := KeyHashes("member", 3)

	assert.Equal(t, xxhash.Sum64String("member-0"), h[0])
	assert.Equal(t, xxhash.Sum64String("member-2"), h[2])

	seen := make(map[uint64]bool)
	for _, v := range append(KeyHashes("member", 1000), KeyHashes("probe", 1000)...) {
		seen[v] = true
	}
	assert.Len(t, seen, 2000)
}

func TestZipfHashes(t *testing.T) {
	rng := NewRNG(7)

	h := rng.ZipfHashes(10000, 100, 1.5)

	require.Len(t, h, 10000)
	counts := make(map[uint64]int)
	for _, v := range h {
		counts[v]++
	}
	assert.LessOrEqual(t, len(counts), 100)

	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}
	assert.Greater(t, maxCount, 1000, "the head of the distribution should dominate")
}

func TestBuffers(t *testing.T) {
	buf := AlignedBuffer(96)
	assert.Len(t, buf, 96)
	assert.True(t, mem.IsAligned(buf))

	mis := MisalignedBuffer(64, 4)
	assert.Len(t, mis, 64)
	assert.Equal(t, 4, mem.Offset(mis))
}
