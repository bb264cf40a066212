package sbbf

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBuffer is returned when a filter buffer has no bytes.
	ErrEmptyBuffer = errors.New("sbbf: buffer is empty")

	// ErrMisalignedBuffer is returned when a filter buffer does not start on
	// a 64-byte boundary.
	ErrMisalignedBuffer = errors.New("sbbf: buffer is not 64-byte aligned")

	// ErrBufferLength is returned when a filter buffer's length is not a
	// multiple of the bucket size.
	ErrBufferLength = errors.New("sbbf: buffer length is not a multiple of 32")

	// ErrBufferTooLarge is returned when a filter buffer holds more buckets
	// than a 32-bit bucket index can address.
	ErrBufferTooLarge = errors.New("sbbf: buffer has too many buckets")

	// ErrUnknownBackend is returned when a backend name is not recognized.
	ErrUnknownBackend = errors.New("sbbf: unknown backend")

	// ErrUnsupportedBackend is returned when a backend exists but cannot run
	// on this CPU or in this build.
	ErrUnsupportedBackend = errors.New("sbbf: backend not supported on this CPU")
)

// BufferError describes a buffer rejected at a checked entry point.
//
// The violated precondition can be matched with errors.Is against
// ErrEmptyBuffer, ErrMisalignedBuffer, ErrBufferLength or ErrBufferTooLarge.
type BufferError struct {
	Len    int // length of the rejected buffer
	Offset int // bytes past the previous 64-byte boundary
	cause  error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("invalid filter buffer (len=%d, offset=%d): %v", e.Len, e.Offset, e.cause)
}

func (e *BufferError) Unwrap() error { return e.cause }
