package city

import (
	"encoding/binary"
	"fmt"
)

// Some primes between 2^63 and 2^64 for various uses.
const (
	k0 uint64 = 0xc3a5c85c97cb3127
	k1 uint64 = 0xb492b66fbe98f273
	k2 uint64 = 0x9ae16a3b2f90404f
)

// Magic numbers for 32-bit hashing, copied from Murmur3.
const (
	c1 uint32 = 0xcc9e2d51
	c2 uint32 = 0x1b873593
)

// kMul is the multiplier of the 128-to-64 bit combiner.
const kMul uint64 = 0x9ddfea08eb382d69

// Uint128 is a 128-bit value held as two 64-bit halves.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Uint64s returns the halves as {Lo, Hi}.
func (u Uint128) Uint64s() [2]uint64 {
	return [2]uint64{u.Lo, u.Hi}
}

// Bytes returns the 16-byte little-endian encoding, Lo first.
func (u Uint128) Bytes() []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b, u.Lo)
	binary.LittleEndian.PutUint64(b[8:], u.Hi)
	return b
}

// String returns the value as 32 hex digits, high half first.
func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

// std is the little-endian hasher backing the package-level functions.
var std = New()

// Hash32 returns the 32-bit CityHash of s.
func Hash32(s []byte) uint32 { return std.Hash32(s) }

// Hash64 returns the 64-bit CityHash of s.
func Hash64(s []byte) uint64 { return std.Hash64(s) }

// Hash64WithSeed hashes s and folds seed into the result.
func Hash64WithSeed(s []byte, seed uint64) uint64 { return std.Hash64WithSeed(s, seed) }

// Hash64WithSeeds hashes s and folds both seeds into the result.
func Hash64WithSeeds(s []byte, seed0, seed1 uint64) uint64 {
	return std.Hash64WithSeeds(s, seed0, seed1)
}

// Hash128 returns the 128-bit CityHash of s.
func Hash128(s []byte) Uint128 { return std.Hash128(s) }

// Hash128WithSeed returns the 128-bit CityHash of s starting from seed.
func Hash128WithSeed(s []byte, seed Uint128) Uint128 { return std.Hash128WithSeed(s, seed) }

// Hash128to64 reduces a 128-bit value to 64 bits with a Murmur-inspired mix.
func Hash128to64(x Uint128) uint64 { return hashLen16(x.Lo, x.Hi) }
