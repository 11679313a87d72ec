// Package shard maps keys to shards.
//
// Jump and Of pick a shard index that moves as few keys as possible when
// the shard count grows. Map is a concurrent hash map whose buckets are
// chosen by CityHash64.
package shard
