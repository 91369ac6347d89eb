package openaddr

import "reflect"

// hashFunc is a type definition for what a hash function should look like
type hashFunc[K comparable] func(K) uint64

// slotState is an explicit three-way tag. Relying on a zero-valued key as
// an empty sentinel would make a legitimate zero key ambiguous, so the
// tag is authoritative.
type slotState uint8

const (
	slotEmpty slotState = iota // never occupied
	slotLive                   // holds a current entry
	slotTombstone              // occupied once, then removed
)

// HashMap represents a closed hashing (open addressing) hashtable using
// linear probing. Slot state, hashkeys, keys and values live in parallel
// slices of equal length.
type HashMap[K comparable, V any] struct {
	hash       hashFunc[K]
	loadFactor float64
	mask       uint64
	expand     uint
	keys       uint
	tombs      uint
	size       uint
	states     []slotState
	hashkeys   []uint64
	slotKeys   []K
	slotVals   []V
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
	slotCnt := alignBucketCount(size)
	m := &HashMap[K, V]{
		hash:       hash,
		loadFactor: loadFactor,
		mask:       slotCnt - 1, // this minus one is extremely important for using a mask over modulo
		expand:     uint(float64(slotCnt) * loadFactor),
		keys:       0,
		tombs:      0,
		size:       uint(slotCnt),
		states:     make([]slotState, slotCnt),
		hashkeys:   make([]uint64, slotCnt),
		slotKeys:   make([]K, slotCnt),
		slotVals:   make([]V, slotCnt),
	}
	return m
}

// probe scans forward from the hashkey's home slot with wraparound and
// reports the slot where key lives, or where it would go. When forInsert
// is set the first tombstone seen is remembered as the landing slot, but
// the scan keeps going until an empty slot or a live match so that a live
// key further down the sequence is never shadowed. A read probe must not
// stop at a tombstone. Termination is guaranteed because the load factor
// gate counts tombstones as occupancy and keeps at least one empty slot
// in every probe sequence.
func (m *HashMap[K, V]) probe(hashkey uint64, key K, forInsert bool) (uint64, bool) {
	i := hashkey & m.mask
	var landing uint64
	var haveLanding bool
	for {
		switch m.states[i] {
		case slotEmpty:
			if forInsert && haveLanding {
				return landing, false
			}
			return i, false
		case slotLive:
			if m.hashkeys[i] == hashkey && m.slotKeys[i] == key {
				return i, true
			}
		case slotTombstone:
			if forInsert && !haveLanding {
				landing, haveLanding = i, true
			}
		}
		i = (i + 1) & m.mask
	}
}

// resize rebuilds the table at the newSize provided by replaying every
// live slot through the ungated internal insert. Tombstones are not
// carried over, so a resize also compacts prior deletions, and it can
// never trigger another resize.
func (m *HashMap[K, V]) resize(newSize uint) {
	newHM := newHashMap[K, V](newSize, m.hash, m.loadFactor)
	for i := 0; i < len(m.states); i++ {
		if m.states[i] == slotLive {
			newHM.insertInternal(m.hashkeys[i], m.slotKeys[i], m.slotVals[i])
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
	i, found := m.probe(hashkey, key, false)
	if !found {
		return *new(V), false
	}
	return m.slotVals[i], true
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
	// tombstones count as occupancy here: they lengthen probe sequences
	// just like live entries, and only a rebuild reclaims them
	for m.keys+m.tombs >= m.expand {
		if m.keys+1 >= m.expand {
			m.resize(uint(len(m.states)) * 2)
		} else {
			// tombstones are the pressure, rebuild at the same size
			m.resize(uint(len(m.states)))
		}
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
	i, found := m.probe(hashkey, key, true)
	if found {
		// live match, update the value in place
		prev := m.slotVals[i]
		m.slotVals[i] = value
		return prev, true
	}
	if m.states[i] == slotTombstone {
		// reusing a tombstoned slot frees its occupancy debt
		m.tombs--
	}
	m.states[i] = slotLive
	m.hashkeys[i] = hashkey
	m.slotKeys[i] = key
	m.slotVals[i] = value
	m.keys++
	return *new(V), false
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
	i, found := m.probe(hashkey, key, false)
	if !found {
		// key was absent, table unchanged
		return *new(V), false
	}
	ret := m.slotVals[i]
	// the slot flips to tombstone so later probes keep scanning past it;
	// key and value are cleared to release references
	m.states[i] = slotTombstone
	m.hashkeys[i] = 0
	m.slotKeys[i] = *new(K)
	m.slotVals[i] = *new(V)
	m.keys--
	m.tombs++
	return ret, true
}

// ContainsKey reports whether key is currently live in the map
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.lookup(0, key)
	return ok
}

// ContainsValue reports whether any live entry holds value. Values are
// not hash indexed, so this is a full scan of every slot.
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
	for i := 0; i < len(m.states); i++ {
		if m.states[i] != slotLive {
			continue
		}
		if !it(m.slotKeys[i], m.slotVals[i]) {
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

// Clear resets every slot to empty and the entry count to zero. The slot
// count is left unchanged.
func (m *HashMap[K, V]) Clear() {
	slotCnt := len(m.states)
	m.states = make([]slotState, slotCnt)
	m.hashkeys = make([]uint64, slotCnt)
	m.slotKeys = make([]K, slotCnt)
	m.slotVals = make([]V, slotCnt)
	m.keys = 0
	m.tombs = 0
}

// MaxProbeLength returns the longest distance between any live entry and
// its home slot, a rough measure of clustering
func (m *HashMap[K, V]) MaxProbeLength() int {
	var longest int
	for i := 0; i < len(m.states); i++ {
		if m.states[i] != slotLive {
			continue
		}
		home := m.hashkeys[i] & m.mask
		dist := (uint64(i) - home) & m.mask
		if int(dist) > longest {
			longest = int(dist)
		}
	}
	return longest
}

// Tombstones returns the number of tombstoned slots awaiting compaction
func (m *HashMap[K, V]) Tombstones() int {
	return int(m.tombs)
}

// PercentFull returns the current load factor of the HashMap
func (m *HashMap[K, V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.states))
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[K, V]) Len() int {
	return int(m.keys)
}

// Cap returns the current number of slots in the HashMap
func (m *HashMap[K, V]) Cap() int {
	return len(m.states)
}

// IsEmpty reports whether the HashMap holds no entries
func (m *HashMap[K, V]) IsEmpty() bool {
	return m.keys == 0
}
