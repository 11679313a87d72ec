package shard

import "github.com/hupe1980/hashkit/city"

// Jump returns the bucket in [0, buckets) for key using the Lamping-Veach
// jump consistent hash. Growing from n to n+1 buckets moves only the keys
// that land in bucket n.
//
// It panics if buckets <= 0.
func Jump(key uint64, buckets int) int {
	if buckets <= 0 {
		panic("shard: buckets must be positive")
	}

	var b, j int64 = -1, 0
	for j < int64(buckets) {
		b = j
		key = key*2862933555777941757 + 1
		j = int64(float64(b+1) * (float64(int64(1)<<31) / float64((key>>33)+1)))
	}
	return int(b)
}

// Of returns the bucket for a byte key: Jump(city.Hash64(key), buckets).
func Of(key []byte, buckets int) int {
	return Jump(city.Hash64(key), buckets)
}
