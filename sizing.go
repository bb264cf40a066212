package sbbf

import "math"

// MaxBytes is the largest filter size OptimalNumBytes returns (128 MiB),
// the upper bound Parquet writers use for a column's bloom filter.
const MaxBytes = 128 << 20

const bucketBits = BucketSize * 8

// maxSizedBuckets is the largest bucket count whose byte size fits in int.
const maxSizedBuckets = min(MaxBuckets, math.MaxInt/BucketSize)

// saturatedLoad is the keys-per-bucket load above which every bucket is
// full to within float64 precision.
const saturatedLoad = 2048

// NumBytes returns a buffer size for numKeys keys at bitsPerKey bits each,
// rounded to the nearest whole bucket and never less than one bucket.
func NumBytes(bitsPerKey, numKeys int) int {
	if bitsPerKey <= 0 || numKeys <= 0 {
		return BucketSize
	}
	bytes := float64(bitsPerKey) * float64(numKeys) / 8
	buckets := math.Round(bytes / BucketSize)
	if buckets < 1 {
		return BucketSize
	}
	if limit := float64(maxSizedBuckets); buckets > limit {
		buckets = limit
	}
	return int(buckets) * BucketSize
}

// OptimalNumBytes returns the buffer size that keeps the false positive
// probability of ndv distinct values at or below fpp:
//
//	m = -8 * ndv / ln(1 - fpp^(1/8))   bits
//
// rounded up to a whole bucket and clamped to [BucketSize, MaxBytes].
// fpp outside (0, 1) is clamped to the nearest meaningful value.
func OptimalNumBytes(ndv uint64, fpp float64) int {
	if ndv == 0 {
		return BucketSize
	}
	if !(fpp > 0) { // also catches NaN
		return MaxBytes
	}
	if fpp >= 1 {
		return BucketSize
	}

	bits := -8 * float64(ndv) / math.Log1p(-math.Pow(fpp, 1.0/8))
	if math.IsInf(bits, 0) || bits >= MaxBytes*8 {
		return MaxBytes
	}
	buckets := int(math.Ceil(bits / bucketBits))
	return max(buckets, 1) * BucketSize
}

// FalsePositiveRate estimates the probability that Contains reports a key
// that was never inserted, for numKeys distinct keys in numBytes of filter.
//
// Keys spread over buckets as a Poisson process. A bucket holding j keys
// answers a foreign probe with probability (1 - (31/32)^j)^8, one factor
// per word.
func FalsePositiveRate(numBytes, numKeys int) float64 {
	numBuckets := numBytes / BucketSize
	if numBuckets <= 0 {
		return 1
	}
	if numKeys <= 0 {
		return 0
	}

	lambda := float64(numKeys) / float64(numBuckets)
	if lambda > saturatedLoad {
		return 1
	}
	limit := int(lambda + 12*math.Sqrt(lambda) + 64)

	const wordMiss = 31.0 / 32.0

	var fpr float64
	logP := -lambda // ln Pois(0; lambda)
	for j := 0; j <= limit; j++ {
		if j > 0 {
			logP += math.Log(lambda) - math.Log(float64(j))
		}
		hit := 1 - math.Pow(wordMiss, float64(j))
		fpr += math.Exp(logP) * math.Pow(hit, 8)
	}
	return min(fpr, 1)
}
