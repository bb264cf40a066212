package sbbf

import (
	"unsafe"

	"github.com/hupe1980/sbbf/internal/conv"
	"github.com/hupe1980/sbbf/internal/mem"
	"github.com/hupe1980/sbbf/internal/simd"
)

const (
	// Alignment is the required start alignment of a filter buffer in bytes.
	Alignment = mem.Alignment

	// BucketSize is the size of one bucket in bytes. A filter buffer is a
	// whole number of buckets.
	BucketSize = simd.BucketSize

	// MaxBuckets is the largest number of buckets a filter buffer may hold.
	MaxBuckets = simd.MaxBuckets
)

// Buffer is a filter buffer that has passed validation.
//
// A Buffer does not own its memory; it is a view of the caller's slice.
// Operations taking a Buffer never re-check the layout. The zero Buffer
// is not valid and panics when used.
type Buffer struct {
	b []byte
	n uint32
}

// NewBuffer validates b and wraps it. b must be non-empty, start on a
// 64-byte boundary and have a length that is a multiple of BucketSize.
//
// The returned error is a *BufferError wrapping one of ErrEmptyBuffer,
// ErrMisalignedBuffer, ErrBufferLength or ErrBufferTooLarge.
func NewBuffer(b []byte) (Buffer, error) {
	var cause error
	switch {
	case len(b) == 0:
		cause = ErrEmptyBuffer
	case !mem.IsAligned(b):
		cause = ErrMisalignedBuffer
	case len(b)%BucketSize != 0:
		cause = ErrBufferLength
	default:
		n, err := conv.BucketCount(len(b), BucketSize)
		if err != nil {
			cause = ErrBufferTooLarge
			break
		}
		return Buffer{b: b, n: n}, nil
	}
	return Buffer{}, &BufferError{Len: len(b), Offset: mem.Offset(b), cause: cause}
}

// Bytes returns the underlying slice.
func (b Buffer) Bytes() []byte { return b.b }

// NumBuckets returns the number of 32-byte buckets.
func (b Buffer) NumBuckets() int { return int(b.n) }

// Len returns the buffer length in bytes.
func (b Buffer) Len() int { return len(b.b) }

// Reset clears every bit, leaving an empty filter.
func (b Buffer) Reset() { clear(b.b) }

func (b Buffer) ptr() unsafe.Pointer {
	if b.n == 0 {
		panic("sbbf: use of zero Buffer")
	}
	return unsafe.Pointer(unsafe.SliceData(b.b)) //nolint:gosec // layout validated by NewBuffer
}
