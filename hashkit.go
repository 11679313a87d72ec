package hashkit

import (
	"github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"

	"github.com/hupe1980/hashkit/city"
	"github.com/hupe1980/hashkit/internal/hash"
	"github.com/hupe1980/hashkit/ketama"
)

// CityHash32 returns the 32-bit CityHash of data.
func CityHash32(data []byte) uint32 {
	return city.Hash32(data)
}

// CityHash64 returns the 64-bit CityHash of data.
func CityHash64(data []byte) uint64 {
	return city.Hash64(data)
}

// CityHash64WithSeed returns the 64-bit CityHash of data mixed with seed.
func CityHash64WithSeed(data []byte, seed uint64) uint64 {
	return city.Hash64WithSeed(data, seed)
}

// CityHash64WithSeeds returns the 64-bit CityHash of data mixed with two seeds.
func CityHash64WithSeeds(data []byte, seed0, seed1 uint64) uint64 {
	return city.Hash64WithSeeds(data, seed0, seed1)
}

// CityHash128 returns the 128-bit CityHash of data as {low, high}.
func CityHash128(data []byte) [2]uint64 {
	return city.Hash128(data).Uint64s()
}

// CityHash128WithSeed returns the 128-bit CityHash of data for the seed
// {low, high}, as {low, high}.
func CityHash128WithSeed(data []byte, seed [2]uint64) [2]uint64 {
	return city.Hash128WithSeed(data, city.Uint128{Lo: seed[0], Hi: seed[1]}).Uint64s()
}

// KetamaHash32 returns the Ketama ring position of key.
func KetamaHash32(key []byte) uint32 {
	return ketama.Hash32(key)
}

// KetamaHash64 returns KetamaHash32(key) zero-extended to 64 bits.
func KetamaHash64(key []byte) uint64 {
	return ketama.Hash64(key)
}

// Murmur32 returns the 32-bit MurmurHash3 (x86_32) of data with seed 0.
func Murmur32(data []byte) uint32 {
	return murmur3.Sum32(data)
}

// Murmur64 returns the first half of the 128-bit MurmurHash3 (x64_128) of data.
func Murmur64(data []byte) uint64 {
	return murmur3.Sum64(data)
}

// Murmur128 returns the 128-bit MurmurHash3 (x64_128) of data as {h1, h2}.
func Murmur128(data []byte) [2]uint64 {
	h1, h2 := murmur3.Sum128(data)
	return [2]uint64{h1, h2}
}

// FNVHash returns the "improved FNV-1" hash of data used by Java hash
// utilities. The result is non-negative as an int32, except for the single
// input class that maps to 0x80000000.
func FNVHash(data []byte) uint32 {
	return hash.FNV32(data)
}

// Metro64 returns the 64-bit MetroHash of data.
func Metro64(data []byte, seed uint64) uint64 {
	return metro.Hash64(data, seed)
}

// Metro128 returns the 128-bit MetroHash of data as {low, high}.
func Metro128(data []byte, seed uint64) [2]uint64 {
	lo, hi := metro.Hash128(data, seed)
	return [2]uint64{lo, hi}
}

// AlgorithmInfo describes a registered digest algorithm.
type AlgorithmInfo struct {
	Name string `json:"name"`
	// Size is the digest length in bytes.
	Size int `json:"size"`
}

// Algorithms lists the digest algorithms accepted by WithAlgorithm and Sum,
// sorted by name.
func Algorithms() []AlgorithmInfo {
	names := hash.Names()
	out := make([]AlgorithmInfo, 0, len(names))
	for _, name := range names {
		a, _ := hash.Lookup(name)
		out = append(out, AlgorithmInfo{Name: a.Name, Size: a.Size})
	}
	return out
}

// Sum returns the digest of data under the named algorithm.
//
// Digests are the big-endian bytes of the hash value. 128-bit digests hold
// the high half first.
func Sum(algorithm string, data []byte) ([]byte, error) {
	a, ok := hash.Lookup(algorithm)
	if !ok {
		return nil, &ErrUnknownAlgorithm{Name: algorithm}
	}
	return a.Sum(data), nil
}
