// Package cache provides in-memory LRU caches.
//
// LRU is a single-lock cache bounded by a caller-defined cost (entries or
// bytes). ShardedLRU spreads string keys over 64 LRU shards, selecting the
// shard with a seeded CityHash64, so concurrent ring lookups and blob block
// reads rarely contend on the same mutex.
//
// Both caches can reserve their retained cost from a resource.Controller;
// when the controller refuses, the entry is simply not cached.
package cache
