package simd

import (
	"encoding/hex"
	"math"
	"math/bits"
	"math/rand"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sbbf/internal/mem"
)

// referenceInsert is a bit-at-a-time rendition of the format description.
// It addresses single bytes so it also pins down the little-endian layout.
func referenceInsert(buf []byte, numBuckets uint32, hash uint64) bool {
	hi := uint32(bits.RotateLeft64(hash, 32))
	idx := int((uint64(hi) * uint64(numBuckets)) >> 32)
	x := uint32(hash)
	present := true
	for i, s := range Salt {
		bit := (x * s) >> 27
		pos := idx*BucketSize + 4*i + int(bit/8)
		m := byte(1) << (bit % 8)
		if buf[pos]&m == 0 {
			present = false
		}
		buf[pos] |= m
	}
	return present
}

func referenceContains(buf []byte, numBuckets uint32, hash uint64) bool {
	cp := append([]byte(nil), buf...)
	return referenceInsert(cp, numBuckets, hash)
}

func ptr(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}

func TestSalt(t *testing.T) {
	want := [8]uint32{0x47b6137b, 0x44974d91, 0x8824ad5b, 0xa2b7289d, 0x705495c7, 0x2df1424b, 0x9efc4947, 0x5c6bfb31}
	assert.Equal(t, want, Salt)
	for i, s := range Salt {
		assert.Equal(t, uint32(1), s&1, "salt %d must be odd", i)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		x    uint32
		want [8]uint32
	}{
		{69, [8]uint32{0x400, 0x8000, 0x400000, 0x8000000, 0x100, 0x1000, 0x8000000, 0x20000000}},
		{12, [8]uint32{0x800, 0x40, 0x1000, 0x100000, 0x100, 0x10, 0x4000, 0x400}},
		{0xcafebabe, [8]uint32{0x10000000, 0x40, 0x8000, 0x1, 0x4000, 0x400, 0x1, 0x40000000}},
		{0, [8]uint32{1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Mask(tt.x), "x=%#x", tt.x)
	}

	r := rand.New(rand.NewSource(1))
	var seen [8]uint32
	for n := 0; n < 10000; n++ {
		m := Mask(r.Uint32())
		for i, w := range m {
			require.Equal(t, 1, bits.OnesCount32(w), "word %d must have exactly one bit", i)
			seen[i] |= w
		}
	}
	for i, s := range seen {
		assert.Equalf(t, uint32(math.MaxUint32), s, "word %d should reach every bit position", i)
	}
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		hash       uint64
		numBuckets uint32
		want       uint32
	}{
		{69, 2, 0},
		{0xdeadbeefcafebabe, 1000, 869},
		{math.MaxUint64, 7, 6},
		{1 << 32, 3, 0},
		{math.MaxUint64, MaxBuckets, MaxBuckets - 1},
		{0x8000000000000000, 2, 1},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, BucketIndex(tt.hash, tt.numBuckets), "hash=%#x n=%d", tt.hash, tt.numBuckets)
	}
}

func TestBucketIndex_RangeAndUniformity(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for _, n := range []uint32{1, 2, 3, 7, 100, 1 << 20, MaxBuckets} {
		for i := 0; i < 1000; i++ {
			require.Less(t, BucketIndex(r.Uint64(), n), n)
		}
	}

	const numBuckets = 64
	const perBucket = 1000
	var counts [numBuckets]int
	for i := 0; i < numBuckets*perBucket; i++ {
		counts[BucketIndex(r.Uint64(), numBuckets)]++
	}
	for i, c := range counts {
		assert.InDeltaf(t, perBucket, c, perBucket/4, "bucket %d occupancy", i)
	}
}

func TestKernels_Smoke(t *testing.T) {
	want, err := hex.DecodeString("0004000000800000000040000000000800010000001000000000000800000020" +
		"0000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)

	for _, isa := range Available() {
		t.Run(isa.String(), func(t *testing.T) {
			buf := mem.AllocAligned(64)

			assert.False(t, Insert(isa, ptr(buf), 2, 69))
			first := append([]byte(nil), buf...)
			assert.True(t, Contains(isa, ptr(buf), 2, 69))
			assert.False(t, Contains(isa, ptr(buf), 2, 12))
			assert.True(t, Insert(isa, ptr(buf), 2, 69))

			assert.Equal(t, want, buf)
			assert.Equal(t, first, buf, "second insert must not change the buffer")
		})
	}
}

func TestKernels_SingleBucketMatchesMask(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, isa := range Available() {
		t.Run(isa.String(), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				buf := mem.AllocAligned(BucketSize)
				h := r.Uint64()
				require.False(t, Insert(isa, ptr(buf), 1, h))

				m := Mask(uint32(h))
				for w := range m {
					got := uint32(buf[4*w]) | uint32(buf[4*w+1])<<8 | uint32(buf[4*w+2])<<16 | uint32(buf[4*w+3])<<24
					require.Equalf(t, m[w], got, "hash=%#x word=%d", h, w)
				}
			}
		})
	}
}

func TestGeneric_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, n := range []uint32{1, 2, 3, 17, 256} {
		got := mem.AllocAligned(int(n) * BucketSize)
		want := make([]byte, len(got))
		for i := 0; i < 4000; i++ {
			h := r.Uint64()
			if r.Intn(3) == 0 {
				require.Equal(t, referenceContains(want, n, h), containsGeneric(ptr(got), n, h))
				continue
			}
			require.Equal(t, referenceInsert(want, n, h), insertGeneric(ptr(got), n, h))
		}
		require.Equal(t, want, got, "numBuckets=%d", n)
	}
}

func TestKernels_MatchGeneric(t *testing.T) {
	for _, isa := range Available() {
		if isa == Generic {
			continue
		}
		t.Run(isa.String(), func(t *testing.T) {
			r := rand.New(rand.NewSource(5))
			for _, n := range []uint32{1, 2, 3, 7, 64, 1000} {
				got := mem.AllocAligned(int(n) * BucketSize)
				want := mem.AllocAligned(int(n) * BucketSize)

				// Small hash pools force repeated inserts and positive lookups.
				pool := make([]uint64, 2*n+8)
				for i := range pool {
					pool[i] = r.Uint64()
				}
				pool[0], pool[1] = 0, math.MaxUint64

				for step := 0; step < 5000; step++ {
					h := pool[r.Intn(len(pool))]
					if r.Intn(4) == 0 {
						h = r.Uint64()
					}
					if r.Intn(2) == 0 {
						require.Equalf(t, containsGeneric(ptr(want), n, h), Contains(isa, ptr(got), n, h), "n=%d step=%d", n, step)
						continue
					}
					require.Equalf(t, insertGeneric(ptr(want), n, h), Insert(isa, ptr(got), n, h), "n=%d step=%d", n, step)
				}
				require.Equalf(t, want, got, "n=%d", n)
			}
		})
	}
}

func TestKernels_TouchOnlyOneBucket(t *testing.T) {
	const n = 8
	for _, isa := range Available() {
		t.Run(isa.String(), func(t *testing.T) {
			buf := mem.AllocAligned(n * BucketSize)
			h := uint64(0x9e3779b97f4a7c15)
			Insert(isa, ptr(buf), n, h)

			idx := int(BucketIndex(h, n))
			for i, c := range buf {
				if i/BucketSize != idx {
					require.Zerof(t, c, "byte %d outside bucket %d was written", i, idx)
				}
			}
		})
	}
}

func TestISA_StringAndParse(t *testing.T) {
	for _, isa := range []ISA{Generic, SSE41, AVX2, NEON} {
		got, ok := ParseISA(isa.String())
		require.True(t, ok)
		assert.Equal(t, isa, got)
	}

	got, ok := ParseISA(" Fallback ")
	assert.True(t, ok)
	assert.Equal(t, Generic, got)

	_, ok = ParseISA("avx512")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ISA(200).String())
}

func TestAvailable(t *testing.T) {
	isas := Available()
	require.NotEmpty(t, isas)
	assert.Equal(t, Generic, isas[len(isas)-1])
	assert.Equal(t, ActiveISA(), isas[0], "the active ISA is the best available one")
	for _, isa := range isas {
		assert.True(t, IsAvailable(isa))
	}
	assert.False(t, IsAvailable(numISA))
}

func TestActiveISA_ResolvedOnce(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]ISA, 64)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = ActiveISA()
		}(i)
	}
	wg.Wait()

	for _, isa := range got {
		assert.Equal(t, got[0], isa)
	}
	assert.Equal(t, int32(1), resolutions.Load())
}
