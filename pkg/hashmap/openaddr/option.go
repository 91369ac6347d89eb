package openaddr

import "github.com/scottcagno/hashtable/pkg/hash"

// Option tunes a single HashMap at construction time
type Option[K comparable] func(*config[K])

type config[K comparable] struct {
	hasher     func(K) uint64
	loadFactor float64
}

func defaultConfig[K comparable]() *config[K] {
	return &config[K]{
		hasher:     hash.ForType[K](),
		loadFactor: DefaultLoadFactor,
	}
}

// WithHasher overrides the default runtime hasher. The supplied function
// must be consistent: equal keys must produce equal hash values.
func WithHasher[K comparable](hasher func(K) uint64) Option[K] {
	return func(c *config[K]) {
		c.hasher = hasher
	}
}

// WithLoadFactor overrides DefaultLoadFactor. Values outside of the open
// interval (0, 1) are rejected by NewHashMap.
func WithLoadFactor[K comparable](loadFactor float64) Option[K] {
	return func(c *config[K]) {
		c.loadFactor = loadFactor
	}
}
