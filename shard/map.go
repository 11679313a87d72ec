package shard

import (
	"unsafe"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/hupe1980/hashkit/city"
)

// Map is a concurrent string-keyed map. Keys are spread over the
// underlying table by a seeded CityHash64.
type Map[V any] struct {
	m *xsync.MapOf[string, V]
}

type mapConfig struct {
	presize int
}

// MapOption configures a Map.
type MapOption func(*mapConfig)

// WithPresize sizes the map to hold n entries without growing.
func WithPresize(n int) MapOption {
	return func(c *mapConfig) {
		c.presize = n
	}
}

// NewMap creates an empty Map.
func NewMap[V any](opts ...MapOption) *Map[V] {
	var c mapConfig
	for _, fn := range opts {
		fn(&c)
	}

	var xopts []func(*xsync.MapConfig)
	if c.presize > 0 {
		xopts = append(xopts, xsync.WithPresize(c.presize))
	}
	return &Map[V]{
		m: xsync.NewMapOfWithHasher[string, V](hashString, xopts...),
	}
}

func hashString(key string, seed uint64) uint64 {
	// The hash does not retain its input.
	b := unsafe.Slice(unsafe.StringData(key), len(key))
	return city.Hash64WithSeed(b, seed)
}

// Load returns the value stored under key.
func (m *Map[V]) Load(key string) (V, bool) {
	return m.m.Load(key)
}

// Store sets the value for key.
func (m *Map[V]) Store(key string, value V) {
	m.m.Store(key, value)
}

// LoadOrStore returns the existing value for key if present. Otherwise it
// stores value and returns it. loaded reports whether the value existed.
func (m *Map[V]) LoadOrStore(key string, value V) (actual V, loaded bool) {
	return m.m.LoadOrStore(key, value)
}

// Delete removes key.
func (m *Map[V]) Delete(key string) {
	m.m.Delete(key)
}

// Range calls f for each entry until f returns false. Entries stored or
// deleted concurrently may or may not be visited.
func (m *Map[V]) Range(f func(key string, value V) bool) {
	m.m.Range(f)
}

// Size returns the number of entries.
func (m *Map[V]) Size() int {
	return m.m.Size()
}
