package ring

import (
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"

	"github.com/hupe1980/hashkit/city"
	"github.com/hupe1980/hashkit/ketama"
)

// HashFunc places keys and replica labels on the ring.
type HashFunc interface {
	Sum32(key []byte) uint32
}

// PointHasher is an optional interface for hash functions that derive
// several ring points from a single replica label.
type PointHasher interface {
	HashFunc
	Points(label []byte) []uint32
}

// Func adapts a plain 32-bit hash function to HashFunc.
type Func func(key []byte) uint32

// Sum32 implements HashFunc.
func (f Func) Sum32(key []byte) uint32 { return f(key) }

type ketamaHash struct{}

func (ketamaHash) Sum32(key []byte) uint32 { return ketama.Hash32(key) }

func (ketamaHash) Points(label []byte) []uint32 {
	p := ketama.Points(label)
	return p[:]
}

var (
	// Ketama is the libketama scheme: four points per MD5 digest.
	Ketama HashFunc = ketamaHash{}
	// City32 places one point per replica with CityHash32.
	City32 HashFunc = Func(city.Hash32)
	// Murmur32 places one point per replica with MurmurHash3 x86_32.
	Murmur32 HashFunc = Func(murmur3.Sum32)
)

// ParseHashFunc returns the preset named ketama, city32 or murmur32.
func ParseHashFunc(name string) (HashFunc, error) {
	switch strings.ToLower(name) {
	case "", "ketama":
		return Ketama, nil
	case "city32":
		return City32, nil
	case "murmur32":
		return Murmur32, nil
	default:
		return nil, fmt.Errorf("ring: unknown hash function %q", name)
	}
}
