package generator

import (
	"encoding/binary"
	"sync"
)

// Cache memoizes rendered artifacts by structural set content
type Cache struct {
	mux     sync.RWMutex
	entries map[uint64][]*cacheEntry
	hits    int
}

type cacheEntry struct {
	set       Set
	namespace string
	emitter   string
	source    []byte
}

// NewCache creates a cache
func NewCache() *Cache {
	return &Cache{entries: map[uint64][]*cacheEntry{}}
}

func cacheKey(set Set, namespace, emitter string) uint64 {
	data := binary.AppendUvarint(nil, set.Hash())
	data = appendField(data, namespace)
	data = appendField(data, emitter)
	return Hash(data)
}

// Get returns cached source for set
func (c *Cache) Get(set Set, namespace, emitter string) ([]byte, bool) {
	key := cacheKey(set, namespace, emitter)
	c.mux.Lock()
	defer c.mux.Unlock()
	for _, entry := range c.entries[key] {
		if entry.namespace == namespace && entry.emitter == emitter && entry.set.Equal(set) {
			c.hits++
			return entry.source, true
		}
	}
	return nil, false
}

// Put stores rendered source for set
func (c *Cache) Put(set Set, namespace, emitter string, source []byte) {
	key := cacheKey(set, namespace, emitter)
	c.mux.Lock()
	defer c.mux.Unlock()
	for _, entry := range c.entries[key] {
		if entry.namespace == namespace && entry.emitter == emitter && entry.set.Equal(set) {
			return
		}
	}
	c.entries[key] = append(c.entries[key], &cacheEntry{set: set, namespace: namespace, emitter: emitter, source: source})
}

// Hits returns number of cache hits
func (c *Cache) Hits() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.hits
}
