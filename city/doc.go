// Package city implements the CityHash v1.1 family of non-cryptographic hash
// functions: Hash32, Hash64 (optionally seeded) and Hash128 (optionally seeded).
//
// # Algorithms
//
// Every entry point is a pure function of its input. Each one dispatches on
// the input length into disjoint size bands, and each band has its own mixing
// schedule:
//
//	Hash32    0-4 | 5-12 | 13-24 | >24 (20-byte rounds)
//	Hash64    0-16 | 17-32 | 33-64 | >64 (64-byte rounds, tail first)
//	Hash128   <128 (CityMurmur) | >=128 (64-byte rounds + 32-byte tail folds)
//
// The outputs are bit-compatible with the reference CityHash v1.1. They are
// not suitable for cryptographic use or for hashing adversarial input.
//
// # Byte Order
//
// The package-level functions always read input words little-endian, which
// is what the published reference vectors assume. A Hasher configured with
// HostEndian reads words in the host CPU's native order instead. This only
// matters on big-endian hosts, where it reproduces the output of
// implementations that load words natively:
//
//	h := city.New(city.WithByteOrder(city.HostEndian))
//	sum := h.Hash64(data)
//
// # Usage
//
//	city.Hash32([]byte("hello"))
//	city.Hash64WithSeed(data, 42)
//	lohi := city.Hash128(data)
//	fmt.Println(lohi) // 32 hex digits, high word first
//
// All functions are safe for concurrent use.
package city
