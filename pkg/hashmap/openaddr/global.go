package openaddr

import "errors"

const (
	DefaultLoadFactor = 0.50 // linear probing degrades fast under clustering
	DefaultMapSize    = 16
)

var (
	ErrBadCapacity   = errors.New("openaddr: capacity must be at least one")
	ErrBadLoadFactor = errors.New("openaddr: load factor must be between zero and one, exclusive")
)

// alignBucketCount aligns slot counts to ensure all sizes are powers of two
func alignBucketCount(size uint) uint64 {
	count := uint(1)
	for count < size {
		count *= 2
	}
	return uint64(count)
}
