package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/hashkit/resource"
)

// CostFunc reports how much of the capacity a value occupies.
type CostFunc[V any] func(V) int64

// Bytes charges a byte slice by its length.
func Bytes(b []byte) int64 { return int64(len(b)) }

// LRU is a least-recently-used cache bounded by total cost.
type LRU[K comparable, V any] struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	cost      CostFunc[V]
	items     map[K]*list.Element
	evictList *list.List
	rc        *resource.Controller

	hits   atomic.Int64
	misses atomic.Int64
}

type entry[K comparable, V any] struct {
	key   K
	value V
	cost  int64
}

// NewLRU creates an LRU cache holding at most capacity cost units.
// A nil cost charges one unit per entry. If rc is non-nil, retained cost
// is also reserved from its memory budget.
func NewLRU[K comparable, V any](capacity int64, cost CostFunc[V], rc *resource.Controller) *LRU[K, V] {
	if cost == nil {
		cost = func(V) int64 { return 1 }
	}
	return &LRU[K, V]{
		capacity:  capacity,
		cost:      cost,
		items:     make(map[K]*list.Element),
		evictList: list.New(),
		rc:        rc,
	}
}

// Get returns the cached value for key.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(el)
		return el.Value.(*entry[K, V]).value, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set caches value under key. Values costing more than the capacity are
// not cached.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.cost(value)
	if cost > c.capacity {
		return
	}

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry[K, V])
		if cost > ent.cost && !c.rc.TryAcquireMemory(cost-ent.cost) {
			// Keep the old value if the memory budget refuses growth.
			return
		}
		if cost < ent.cost {
			c.rc.ReleaseMemory(ent.cost - cost)
		}
		c.size += cost - ent.cost
		ent.value = value
		ent.cost = cost
		c.evictList.MoveToFront(el)
		c.evict()
		return
	}

	// Evict first so released memory is available to the reservation below.
	for c.size+cost > c.capacity {
		el := c.evictList.Back()
		if el == nil {
			break
		}
		c.removeElement(el)
	}

	if !c.rc.TryAcquireMemory(cost) {
		return
	}

	c.items[key] = c.evictList.PushFront(&entry[K, V]{key: key, value: value, cost: cost})
	c.size += cost
}

// Purge removes all entries.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rc.ReleaseMemory(c.size)
	c.items = make(map[K]*list.Element)
	c.evictList.Init()
	c.size = 0
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Size returns the total cost of the cached entries.
func (c *LRU[K, V]) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Stats returns hit and miss counts.
func (c *LRU[K, V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *LRU[K, V]) evict() {
	for c.size > c.capacity {
		el := c.evictList.Back()
		if el == nil {
			break
		}
		c.removeElement(el)
	}
}

func (c *LRU[K, V]) removeElement(el *list.Element) {
	c.evictList.Remove(el)
	ent := el.Value.(*entry[K, V])
	delete(c.items, ent.key)
	c.size -= ent.cost
	c.rc.ReleaseMemory(ent.cost)
}
