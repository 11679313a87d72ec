package shard

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hashkit/city"
	"github.com/hupe1980/hashkit/testutil"
)

func TestJump(t *testing.T) {
	tests := []struct {
		key     uint64
		buckets int
		want    int
	}{
		{1, 1, 0},
		{42, 57, 43},
		{0xDEAD10CC, 1, 0},
		{0xDEAD10CC, 666, 361},
		{256, 1024, 520},
		{0, 10, 0},
		{0xffffffffffffffff, 1000, 313},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%x/%d", tt.key, tt.buckets), func(t *testing.T) {
			assert.Equal(t, tt.want, Jump(tt.key, tt.buckets))
		})
	}
}

func TestJumpPanics(t *testing.T) {
	assert.Panics(t, func() { Jump(1, 0) })
	assert.Panics(t, func() { Of([]byte("x"), -1) })
}

func TestJumpMonotone(t *testing.T) {
	rng := testutil.NewRNG(5)

	for range 1000 {
		key := rng.Uint64()
		prev := Jump(key, 1)
		for n := 2; n <= 64; n++ {
			b := Jump(key, n)
			require.GreaterOrEqual(t, b, 0)
			require.Less(t, b, n)
			if b != prev {
				require.Equal(t, n-1, b, "key moved to an old bucket")
			}
			prev = b
		}
	}
}

func TestOf(t *testing.T) {
	key := []byte("user:42")
	assert.Equal(t, Jump(city.Hash64(key), 16), Of(key, 16))

	counts := make([]int, 8)
	for _, k := range testutil.NewRNG(9).Keys("k", 8000) {
		counts[Of(k, 8)]++
	}
	for i, c := range counts {
		assert.InDelta(t, 1000, c, 200, "bucket %d", i)
	}
}

func TestMap(t *testing.T) {
	m := NewMap[int](WithPresize(128))

	_, ok := m.Load("a")
	assert.False(t, ok)

	m.Store("a", 1)
	v, ok := m.Load("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	actual, loaded := m.LoadOrStore("a", 2)
	assert.True(t, loaded)
	assert.Equal(t, 1, actual)

	actual, loaded = m.LoadOrStore("b", 3)
	assert.False(t, loaded)
	assert.Equal(t, 3, actual)

	assert.Equal(t, 2, m.Size())

	seen := map[string]int{}
	m.Range(func(k string, v int) bool {
		seen[k] = v
		return true
	})
	assert.Equal(t, map[string]int{"a": 1, "b": 3}, seen)

	m.Delete("a")
	_, ok = m.Load("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Size())
}

func TestMapConcurrent(t *testing.T) {
	m := NewMap[string]()
	keys := testutil.NewRNG(2).Keys("session", 1000)

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, k := range keys {
				if i%8 == w {
					m.Store(string(k), string(k))
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(keys), m.Size())
	for _, k := range keys {
		v, ok := m.Load(string(k))
		require.True(t, ok)
		assert.Equal(t, string(k), v)
	}
}

func TestHashStringSeeded(t *testing.T) {
	assert.Equal(t, city.Hash64WithSeed([]byte("abc"), 7), hashString("abc", 7))
	assert.NotEqual(t, hashString("abc", 7), hashString("abc", 8))
	assert.Equal(t, city.Hash64WithSeed(nil, 1), hashString("", 1))
}

func BenchmarkOf(b *testing.B) {
	key := []byte("user:1234567890")
	for b.Loop() {
		_ = Of(key, 1024)
	}
}
