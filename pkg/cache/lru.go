package cache

import (
	"container/list"
	"sync"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a fixed-capacity, goroutine-safe least-recently-used map.
// The evict callback runs for every entry that leaves the cache through
// capacity pressure, Remove or Clear, after the internal lock is released,
// so it may call back into the cache.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
	onEvict  func(key K, value V)
}

// NewLRUCache panics when capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get returns the value for key and marks it most recently used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put inserts or replaces key. A replaced value is returned, not evicted.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		old := entry.value
		entry.value = value
		c.mu.Unlock()
		return old, true
	}

	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})

	var evicted []*lruEntry[K, V]
	for c.order.Len() > c.capacity {
		evicted = append(evicted, c.unlinkLocked(c.order.Back()))
	}
	fn := c.onEvict
	c.mu.Unlock()

	c.notify(fn, evicted)
	var zero V
	return zero, false
}

// Remove deletes key, running the evict callback for it.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	entry := c.unlinkLocked(elem)
	fn := c.onEvict
	c.mu.Unlock()

	c.notify(fn, []*lruEntry[K, V]{entry})
	return entry.value, true
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear empties the cache, evicting from least to most recently used.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	evicted := make([]*lruEntry[K, V], 0, c.order.Len())
	for c.order.Len() > 0 {
		evicted = append(evicted, c.unlinkLocked(c.order.Back()))
	}
	fn := c.onEvict
	c.mu.Unlock()

	c.notify(fn, evicted)
}

func (c *LRUCache[K, V]) unlinkLocked(elem *list.Element) *lruEntry[K, V] {
	entry := c.order.Remove(elem).(*lruEntry[K, V])
	delete(c.items, entry.key)
	return entry
}

func (c *LRUCache[K, V]) notify(fn func(K, V), entries []*lruEntry[K, V]) {
	if fn == nil {
		return
	}
	for _, e := range entries {
		fn(e.key, e.value)
	}
}
