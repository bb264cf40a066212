// Package conv provides checked integer conversions for values that reach
// the filter kernels, which index buckets with 32-bit arithmetic.
package conv
