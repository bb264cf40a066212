package sbbf

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/sbbf/internal/simd"
)

// Filter runs split block bloom filter operations on caller-owned buffers.
//
// A Filter holds no filter state: it only remembers which backend to use
// and where to send logs and metrics. It is safe for concurrent use; the
// buffers it operates on are not (see the package documentation).
//
// The zero Filter runs the generic backend with no logging or metrics.
type Filter struct {
	isa     simd.ISA
	logger  *Logger
	metrics MetricsCollector
}

// New returns a Filter using the fastest backend for this CPU.
// The backend is resolved once per process on first use and never fails.
func New(optFns ...Option) *Filter {
	return newFilter(simd.ActiveISA(), false, optFns)
}

// NewWithBackend returns a Filter pinned to the named backend, for example
// "generic" or "avx2". It fails with ErrUnknownBackend for names it does not
// recognize and with ErrUnsupportedBackend when the backend cannot run here.
func NewWithBackend(name string, optFns ...Option) (*Filter, error) {
	isa, ok := simd.ParseISA(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if !simd.IsAvailable(isa) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, isa)
	}
	return newFilter(isa, true, optFns), nil
}

func newFilter(isa simd.ISA, forced bool, optFns []Option) *Filter {
	o := applyOptions(optFns)
	f := &Filter{
		isa:     isa,
		logger:  o.logger.WithBackend(isa.String()),
		metrics: o.metricsCollector,
	}
	f.logger.LogResolve(isa.String(), forced)
	return f
}

// Backends returns the names of every backend usable on this host, fastest
// first. The last entry is always "generic".
func Backends() []string {
	isas := simd.Available()
	names := make([]string, len(isas))
	for i, isa := range isas {
		names[i] = isa.String()
	}
	return names
}

// Which returns the name of the backend f runs on.
func (f *Filter) Which() string {
	return f.isa.String()
}

// Contains reports whether hash may have been inserted into buf.
// A false result is definite; a true result may be a false positive.
//
// buf is validated first and nothing is read when validation fails.
func (f *Filter) Contains(buf []byte, hash uint64) (bool, error) {
	b, err := f.checkBuffer("contains", buf)
	if err != nil {
		return false, err
	}
	return f.ContainsBuffer(b, hash), nil
}

// Insert adds hash to buf and reports whether it was already present
// (all of its bits were set before the call).
//
// buf is validated first and nothing is touched when validation fails.
func (f *Filter) Insert(buf []byte, hash uint64) (bool, error) {
	b, err := f.checkBuffer("insert", buf)
	if err != nil {
		return false, err
	}
	return f.InsertBuffer(b, hash), nil
}

func (f *Filter) checkBuffer(op string, buf []byte) (Buffer, error) {
	b, err := NewBuffer(buf)
	if err != nil {
		f.collector().RecordInvalidBuffer(err)
		f.log().LogInvalidBuffer(op, err)
		return Buffer{}, err
	}
	return b, nil
}

var noopLogger = NoopLogger()

// log and collector let a zero Filter run on the generic backend without
// logging or metrics.
func (f *Filter) log() *Logger {
	if f.logger == nil {
		return noopLogger
	}
	return f.logger
}

func (f *Filter) collector() MetricsCollector {
	if f.metrics == nil {
		return NoopMetricsCollector{}
	}
	return f.metrics
}

// ContainsBuffer is Contains for an already validated buffer.
func (f *Filter) ContainsBuffer(b Buffer, hash uint64) bool {
	return simd.Contains(f.isa, b.ptr(), b.n, hash)
}

// InsertBuffer is Insert for an already validated buffer.
func (f *Filter) InsertBuffer(b Buffer, hash uint64) bool {
	return simd.Insert(f.isa, b.ptr(), b.n, hash)
}

// ContainsUnchecked is Contains without any validation.
//
// The caller guarantees that buf points to numBuckets*BucketSize readable
// bytes starting on a 64-byte boundary and that 0 < numBuckets <= MaxBuckets.
// Breaking this contract is undefined behavior, not an error.
func (f *Filter) ContainsUnchecked(buf unsafe.Pointer, numBuckets int, hash uint64) bool {
	return simd.Contains(f.isa, buf, uint32(numBuckets), hash) //nolint:gosec // caller contract
}

// InsertUnchecked is Insert without any validation. It has the same
// contract as ContainsUnchecked, and the memory must also be writable.
func (f *Filter) InsertUnchecked(buf unsafe.Pointer, numBuckets int, hash uint64) bool {
	return simd.Insert(f.isa, buf, uint32(numBuckets), hash) //nolint:gosec // caller contract
}

var defaultFilter = sync.OnceValue(func() *Filter { return New() })

// Default returns the shared Filter used by the package-level functions.
// It is created on first use.
func Default() *Filter {
	return defaultFilter()
}

// Which returns the name of the backend selected for this process.
func Which() string {
	return Default().Which()
}

// Contains calls Default().Contains.
func Contains(buf []byte, hash uint64) (bool, error) {
	return Default().Contains(buf, hash)
}

// Insert calls Default().Insert.
func Insert(buf []byte, hash uint64) (bool, error) {
	return Default().Insert(buf, hash)
}
