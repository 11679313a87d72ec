package hash

import (
	"encoding/binary"
	"hash/fnv"
	"slices"

	"github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"

	"github.com/hupe1980/hashkit/city"
	"github.com/hupe1980/hashkit/ketama"
)

// Algorithm names.
const (
	City32    = "city32"
	City64    = "city64"
	City128   = "city128"
	Ketama32  = "ketama32"
	Ketama64  = "ketama64"
	Murmur32  = "murmur32"
	Murmur64  = "murmur64"
	Murmur128 = "murmur128"
	CRC32     = "crc32c"
	FNV32Name = "fnv32"
	FNV1a32   = "fnv1a32"
	FNV1a64   = "fnv1a64"
	Metro64   = "metro64"
	Metro128  = "metro128"
)

// Algorithm is a named one-shot hash producing a fixed-size digest.
//
// Digests are the big-endian bytes of the hash value; 128-bit values are
// written high half first, so the hex form of a digest reads like the
// number it encodes.
type Algorithm struct {
	Name string
	// Size is the digest length in bytes.
	Size int
	Sum  func(data []byte) []byte
}

var registry = map[string]Algorithm{
	City32:    sum32(City32, city.Hash32),
	City64:    sum64(City64, city.Hash64),
	City128:   sum128(City128, func(b []byte) (uint64, uint64) { v := city.Hash128(b); return v.Hi, v.Lo }),
	Ketama32:  sum32(Ketama32, ketama.Hash32),
	Ketama64:  sum64(Ketama64, ketama.Hash64),
	Murmur32:  sum32(Murmur32, murmur3.Sum32),
	Murmur64:  sum64(Murmur64, murmur3.Sum64),
	Murmur128: sum128(Murmur128, murmur3.Sum128),
	CRC32:     sum32(CRC32, CRC32C),
	FNV32Name: sum32(FNV32Name, FNV32),
	FNV1a32:   sum32(FNV1a32, fnv1a32),
	FNV1a64:   sum64(FNV1a64, fnv1a64),
	Metro64:   sum64(Metro64, func(b []byte) uint64 { return metro.Hash64(b, 0) }),
	Metro128:  sum128(Metro128, func(b []byte) (uint64, uint64) { lo, hi := metro.Hash128(b, 0); return hi, lo }),
}

func fnv1a32(b []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(b)
	return h.Sum32()
}

func fnv1a64(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func sum32(name string, fn func([]byte) uint32) Algorithm {
	return Algorithm{Name: name, Size: 4, Sum: func(b []byte) []byte {
		return binary.BigEndian.AppendUint32(make([]byte, 0, 4), fn(b))
	}}
}

func sum64(name string, fn func([]byte) uint64) Algorithm {
	return Algorithm{Name: name, Size: 8, Sum: func(b []byte) []byte {
		return binary.BigEndian.AppendUint64(make([]byte, 0, 8), fn(b))
	}}
}

// sum128 expects fn to return the high half first.
func sum128(name string, fn func([]byte) (uint64, uint64)) Algorithm {
	return Algorithm{Name: name, Size: 16, Sum: func(b []byte) []byte {
		hi, lo := fn(b)
		out := binary.BigEndian.AppendUint64(make([]byte, 0, 16), hi)
		return binary.BigEndian.AppendUint64(out, lo)
	}}
}
