package hashtable

// Map is the contract shared by every hashmap variant in this package.
// Implementations map unique keys to values with no defined iteration
// order. Lookup misses are reported with a false boolean, never an error.
type Map[K comparable, V any] interface {
	Put(key K, value V) (V, bool)
	Get(key K) (V, bool)
	Del(key K) (V, bool)
	ContainsKey(key K) bool
	ContainsValue(value V) bool
	Keys() []K
	Values() []V
	Range(it func(key K, value V) bool)
	Clear()
	Len() int
	Cap() int
	IsEmpty() bool
	PercentFull() float64
}
