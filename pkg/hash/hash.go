package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// Sum64 returns a 64-bit xxhash digest of b
func Sum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// SumString64 returns a 64-bit xxhash digest of s without copying
func SumString64(s string) uint64 {
	return xxhash.Sum64String(s)
}

// ForType returns a hash function for any comparable type, backed by the
// runtime's memory hasher. Hash values are only stable within a single
// process, which is all an in-memory table needs.
func ForType[K comparable]() func(K) uint64 {
	h := maphash.NewHasher[K]()
	return h.Hash
}

// Spread mixes the bits of h so that low-entropy hash functions still
// spread across the low-order bits used for slot selection. Applying it
// changes distribution only, never lookup behavior.
func Spread(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
