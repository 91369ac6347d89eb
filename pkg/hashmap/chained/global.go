package chained

import "errors"

const (
	DefaultLoadFactor = 0.75 // chains stay short well past 50%
	DefaultMapSize    = 16
)

var (
	ErrBadCapacity   = errors.New("chained: capacity must be at least one")
	ErrBadLoadFactor = errors.New("chained: load factor must be between zero and one, exclusive")
)

// alignBucketCount aligns buckets to ensure all sizes are powers of two
func alignBucketCount(size uint) uint64 {
	count := uint(1)
	for count < size {
		count *= 2
	}
	return uint64(count)
}
