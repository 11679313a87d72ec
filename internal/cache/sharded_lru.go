package cache

import (
	"math/rand/v2"
	"unsafe"

	"github.com/hupe1980/hashkit/city"
	"github.com/hupe1980/hashkit/resource"
)

const numShards = 64

// ShardedLRU is a string-keyed LRU cache split across 64 shards to reduce
// lock contention. Keys are routed to shards by a seeded CityHash64.
type ShardedLRU[V any] struct {
	shards [numShards]*LRU[string, V]
	seed   uint64
}

// NewShardedLRU creates a sharded LRU cache.
// The capacity is divided evenly across all shards.
func NewShardedLRU[V any](capacity int64, cost CostFunc[V], rc *resource.Controller) *ShardedLRU[V] {
	shardCapacity := max(capacity/numShards, 1)

	s := &ShardedLRU[V]{
		seed: rand.Uint64(),
	}
	for i := range numShards {
		s.shards[i] = NewLRU[string, V](shardCapacity, cost, rc)
	}
	return s
}

func (s *ShardedLRU[V]) shard(key string) *LRU[string, V] {
	// The hash does not retain its input, so the string bytes can be
	// viewed without a copy.
	b := unsafe.Slice(unsafe.StringData(key), len(key))
	return s.shards[city.Hash64WithSeed(b, s.seed)%numShards]
}

// Get returns the cached value for key.
func (s *ShardedLRU[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set caches value under key.
func (s *ShardedLRU[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)
}

// Purge removes all entries from every shard.
func (s *ShardedLRU[V]) Purge() {
	for _, sh := range s.shards {
		sh.Purge()
	}
}

// Len returns the number of cached entries across all shards.
func (s *ShardedLRU[V]) Len() int {
	var n int
	for _, sh := range s.shards {
		n += sh.Len()
	}
	return n
}

// Size returns the total cost across all shards.
func (s *ShardedLRU[V]) Size() int64 {
	var total int64
	for _, sh := range s.shards {
		total += sh.Size()
	}
	return total
}

// Stats returns aggregated hit/miss statistics.
func (s *ShardedLRU[V]) Stats() (hits, misses int64) {
	for _, sh := range s.shards {
		h, m := sh.Stats()
		hits += h
		misses += m
	}
	return hits, misses
}
