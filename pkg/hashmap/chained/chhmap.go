package chained

import "reflect"

// hashFunc is a type definition for what a hash function should look like
type hashFunc[K comparable] func(K) uint64

// entry is a key value pair that is found in each bucket
type entry[K comparable, V any] struct {
	hashkey uint64
	key     K
	val     V
}

// entryNode is a node in a bucket's singly linked chain
type entryNode[K comparable, V any] struct {
	entry[K, V]
	next *entryNode[K, V]
}

// bucket represents a single slot in the HashMap table. The bucket owns
// its chain head and each node owns the next node.
type bucket[K comparable, V any] struct {
	head *entryNode[K, V]
}

// insert appends a new node for key at the tail of the chain, or updates
// the matching node in place. It returns the previous value and true on
// update, the zero value and false on a fresh insert. Appending at the
// tail keeps chain order equal to insertion order.
func (b *bucket[K, V]) insert(hashkey uint64, key K, val V) (V, bool) {
	newNode := &entryNode[K, V]{
		entry: entry[K, V]{
			hashkey: hashkey,
			key:     key,
			val:     val,
		},
	}
	if b.head == nil {
		b.head = newNode
		return *new(V), false
	}
	current := b.head
	for {
		if current.entry.key == key {
			prev := current.entry.val
			current.entry.val = val
			return prev, true
		}
		if current.next == nil {
			break
		}
		current = current.next
	}
	current.next = newNode
	return *new(V), false
}

func (b *bucket[K, V]) search(key K) (V, bool) {
	current := b.head
	for current != nil {
		if current.entry.key == key {
			return current.entry.val, true
		}
		current = current.next
	}
	return *new(V), false
}

func (b *bucket[K, V]) scan(it func(key K, value V) bool) bool {
	current := b.head
	for current != nil {
		if !it(current.entry.key, current.entry.val) {
			return false
		}
		current = current.next
	}
	return true
}

// delete splices the node matching key out of the chain using a trailing
// pointer and returns the removed value
func (b *bucket[K, V]) delete(key K) (V, bool) {
	if b.head == nil {
		return *new(V), false
	}
	if b.head.entry.key == key {
		ret := b.head.entry.val
		b.head = b.head.next
		return ret, true
	}
	previous := b.head
	for previous.next != nil {
		if previous.next.entry.key == key {
			ret := previous.next.entry.val
			previous.next = previous.next.next
			return ret, true
		}
		previous = previous.next
	}
	return *new(V), false
}

// length walks the chain and reports the node count
func (b *bucket[K, V]) length() int {
	var n int
	for current := b.head; current != nil; current = current.next {
		n++
	}
	return n
}

// HashMap represents an open hashing (separate chaining) hashtable
// implementation
type HashMap[K comparable, V any] struct {
	hash       hashFunc[K]
	loadFactor float64
	mask       uint64
	expand     uint
	shrink     uint
	keys       uint
	size       uint
	buckets    []bucket[K, V]
}

// NewHashMap returns a new HashMap with at least the requested capacity,
// aligned up to the nearest power of two. A capacity below one is a caller
// error and is rejected, never coerced.
func NewHashMap[K comparable, V any](capacity int, opts ...Option[K]) (*HashMap[K, V], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	conf := defaultConfig[K]()
	for _, opt := range opts {
		opt(conf)
	}
	if conf.loadFactor <= 0 || conf.loadFactor >= 1 {
		return nil, ErrBadLoadFactor
	}
	return newHashMap[K, V](uint(capacity), conf.hasher, conf.loadFactor), nil
}

// newHashMap is the internal variant of the previous function
// and is mainly used internally
func newHashMap[K comparable, V any](size uint, hash hashFunc[K], loadFactor float64) *HashMap[K, V] {
	bukCnt := alignBucketCount(size)
	m := &HashMap[K, V]{
		hash:       hash,
		loadFactor: loadFactor,
		mask:       bukCnt - 1, // this minus one is extremely important for using a mask over modulo
		expand:     uint(float64(bukCnt) * loadFactor),
		shrink:     uint(float64(bukCnt) * (1 - loadFactor)),
		keys:       0,
		size:       uint(bukCnt),
		buckets:    make([]bucket[K, V], bukCnt),
	}
	return m
}

// resize grows or shrinks the HashMap to the newSize provided. It makes a
// new map with the new size and replays every live entry through the
// ungated internal insert, so a resize can never trigger another resize.
func (m *HashMap[K, V]) resize(newSize uint) {
	newHM := newHashMap[K, V](newSize, m.hash, m.loadFactor)
	for i := 0; i < len(m.buckets); i++ {
		for n := m.buckets[i].head; n != nil; n = n.next {
			newHM.insertInternal(n.entry.hashkey, n.entry.key, n.entry.val)
		}
	}
	tsize := m.size
	*m = *newHM
	m.size = tsize
}

// Get returns a value for a given key, or returns false if none could be found
// Get can be considered the exported version of the lookup call
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	return m.lookup(0, key)
}

// lookup returns a value for a given key, or returns false if none could be found
func (m *HashMap[K, V]) lookup(hashkey uint64, key K) (V, bool) {
	if hashkey == 0 {
		// calculate the hashkey value
		hashkey = m.hash(key)
	}
	// mask the hashkey to get the initial index
	i := hashkey & m.mask
	return m.buckets[i].search(key)
}

// Put inserts a key value entry and returns the previous value and true
// if an existing entry was updated in place, or the zero value and false
// if a new entry was added
// Put can be considered the exported version of the insert call
func (m *HashMap[K, V]) Put(key K, value V) (V, bool) {
	return m.insert(0, key, value)
}

// insert inserts a key value entry and returns the previous value, or false
func (m *HashMap[K, V]) insert(hashkey uint64, key K, value V) (V, bool) {
	// check and see if we need to grow before the structural change; the
	// pre-insert count is what must stay under the watermark
	for m.keys >= m.expand {
		m.resize(uint(len(m.buckets)) * 2)
	}
	if hashkey == 0 {
		// calculate the hashkey value
		hashkey = m.hash(key)
	}
	return m.insertInternal(hashkey, key, value)
}

// insertInternal inserts without consulting the load factor watermark.
// resize replays entries through here, which is what keeps a resize from
// recursively triggering another resize mid-flight.
func (m *HashMap[K, V]) insertInternal(hashkey uint64, key K, value V) (V, bool) {
	// mask the hashkey to get the initial index
	i := hashkey & m.mask
	val, updated := m.buckets[i].insert(hashkey, key, value)
	if !updated {
		m.keys++
	}
	return val, updated
}

// Del removes a value for a given key and returns the deleted value, or false
// Del can be considered the exported version of the delete call
func (m *HashMap[K, V]) Del(key K) (V, bool) {
	return m.delete(0, key)
}

// delete removes a value for a given key and returns the deleted value, or false
func (m *HashMap[K, V]) delete(hashkey uint64, key K) (V, bool) {
	if hashkey == 0 {
		// calculate the hashkey value
		hashkey = m.hash(key)
	}
	// mask the hashkey to get the initial index
	i := hashkey & m.mask
	val, ok := m.buckets[i].delete(key)
	if !ok {
		// key was absent, table unchanged
		return val, false
	}
	m.keys--
	// check and see if we need to resize down, but never below the
	// originally requested capacity
	if m.keys <= m.shrink && uint(len(m.buckets)) > m.size {
		newSize := m.keys * 2
		if newSize < m.size {
			newSize = m.size
		}
		m.resize(newSize)
	}
	return val, true
}

// ContainsKey reports whether key is currently live in the map
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.lookup(0, key)
	return ok
}

// ContainsValue reports whether any live entry holds value. Values are
// not hash indexed, so this is a full scan of every bucket.
func (m *HashMap[K, V]) ContainsValue(value V) bool {
	var found bool
	m.Range(func(_ K, v V) bool {
		if reflect.DeepEqual(v, value) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Range takes an iterator function and ranges the HashMap as long as
// the iterator function continues to be true. Range is not safe to
// perform an insert or remove operation while ranging!
func (m *HashMap[K, V]) Range(it func(key K, value V) bool) {
	for i := 0; i < len(m.buckets); i++ {
		if !m.buckets[i].scan(it) {
			return
		}
	}
}

// Keys returns a snapshot of the keys currently in the map, in no
// particular order
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.keys)
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns a snapshot of the values currently in the map, in no
// particular order
func (m *HashMap[K, V]) Values() []V {
	vals := make([]V, 0, m.keys)
	m.Range(func(_ K, v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// Clear resets every bucket to empty and the entry count to zero. The
// bucket count is left unchanged.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i].head = nil
	}
	m.keys = 0
}

// PercentFull returns the current load factor of the HashMap
func (m *HashMap[K, V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.buckets))
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[K, V]) Len() int {
	return int(m.keys)
}

// Cap returns the current number of buckets in the HashMap
func (m *HashMap[K, V]) Cap() int {
	return len(m.buckets)
}

// IsEmpty reports whether the HashMap holds no entries
func (m *HashMap[K, V]) IsEmpty() bool {
	return m.keys == 0
}
