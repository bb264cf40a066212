package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for filter buffers (one cache line).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)
	off := (Alignment - Offset(buf)) & (Alignment - 1)

	return buf[off : off+size : off+size]
}

// AllocMisaligned allocates a zeroed byte slice of the given size whose start
// is exactly shift bytes past a 64-byte boundary. It exists to exercise
// alignment checks.
func AllocMisaligned(size, shift int) []byte {
	if size <= 0 {
		return nil
	}
	shift &= Alignment - 1
	buf := AllocAligned(size + shift)
	return buf[shift:]
}

// Offset returns how many bytes b's first element lies past the previous
// 64-byte boundary. A nil or empty slice reports the offset of its data
// pointer, which is 0 for nil.
func Offset(b []byte) int {
	ptr := unsafe.Pointer(unsafe.SliceData(b)) //nolint:gosec // unsafe is required for alignment checks
	return int(uintptr(ptr) & (Alignment - 1))
}

// IsAligned reports whether b starts on a 64-byte boundary.
func IsAligned(b []byte) bool {
	return Offset(b) == 0
}
