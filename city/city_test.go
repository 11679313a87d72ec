package city

import (
	"fmt"
	"testing"

	"github.com/creachadair/cityhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"

	"github.com/hupe1980/hashkit/testutil"
)

const golden = "Google发布的Hash计算算法：CityHash64 与 CityHash128"

func TestGoldenVectors(t *testing.T) {
	s := []byte(golden)

	assert.Equal(t, uint32(0xa8944fbe), Hash32(s))
	assert.Equal(t, uint64(0x1d408f2bbf967e2a), Hash64(s))
	assert.Equal(t, Uint128{Lo: 0x5944f1e788a18db0, Hi: 0xc2f68d8b2bf4a5cf}, Hash128(s))
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, uint64(0x9ae16a3b2f90404f), Hash64(nil))
	assert.Equal(t, Hash64(nil), Hash64([]byte{}))
	assert.Equal(t, uint32(0xdc56d17a), Hash32(nil))
	assert.Equal(t, fmix(mur(0, mur(0, 9))), Hash32(nil))
	assert.Equal(t, uint64(0x75106db890237a4a), Hash64WithSeed(nil, 1234567))
	assert.Equal(t, uint64(0x3feac5f636039766), Hash64WithSeeds(nil, 1234567, k0))
	assert.Equal(t, Uint128{Lo: 0x3df09dfc64c09a2b, Hi: 0x3cb540c392e51e29}, Hash128(nil))
	assert.Equal(t, Hash128WithSeed(nil, Uint128{Lo: k0, Hi: k1}), Hash128(nil))
	assert.Equal(t, hashLen16(k2-1, 2), Hash64WithSeeds(nil, 1, 2))
}

func TestLengthBands(t *testing.T) {
	data := testutil.CityTestData(512)

	for _, n := range []int{0, 1, 3, 4, 5, 8, 12, 13, 16, 17, 24, 25, 32, 33, 64, 65, 127, 128, 129, 143, 144, 255, 256, 257} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			s := testutil.Exact(data[:n])
			require.NotPanics(t, func() {
				_ = Hash32(s)
				_ = Hash64(s)
				_ = Hash64WithSeed(s, 1)
				_ = Hash64WithSeeds(s, 1, 2)
				_ = Hash128(s)
				_ = Hash128WithSeed(s, Uint128{Lo: 1, Hi: 2})
			})
		})
	}
}

func TestNoReadPastEnd(t *testing.T) {
	rng := testutil.NewRNG(4711)
	seed := Uint128{Lo: rng.Uint64(), Hi: rng.Uint64()}

	for n := 0; n <= 300; n++ {
		s := rng.Bytes(n)
		require.NotPanics(t, func() {
			_ = Hash32(s)
			_ = Hash64(s)
			_ = Hash128(s)
			_ = Hash128WithSeed(s, seed)
		}, "len=%d", n)
	}
}

func TestDeterminism(t *testing.T) {
	rng := testutil.NewRNG(1)
	for _, n := range []int{0, 7, 31, 63, 200, 1000} {
		s := rng.Bytes(n)
		dup := append([]byte(nil), s...)

		assert.Equal(t, Hash32(s), Hash32(dup))
		assert.Equal(t, Hash64(s), Hash64(dup))
		assert.Equal(t, Hash64WithSeeds(s, 3, 4), Hash64WithSeeds(dup, 3, 4))
		assert.Equal(t, Hash128(s), Hash128(dup))
	}
}

func TestSeedSensitivity(t *testing.T) {
	rng := testutil.NewRNG(42)
	s := []byte(golden)

	for range 64 {
		seed1, seed2 := rng.Uint64(), rng.Uint64()
		if seed1 == seed2 {
			continue
		}
		assert.NotEqual(t, Hash64WithSeed(s, seed1), Hash64WithSeed(s, seed2))
		assert.NotEqual(t,
			Hash128WithSeed(s, Uint128{Lo: seed1}),
			Hash128WithSeed(s, Uint128{Lo: seed2}),
		)
	}
}

func TestSeededDefinitions(t *testing.T) {
	s := []byte(golden)

	assert.Equal(t, hashLen16(Hash64(s)-k2, 99), Hash64WithSeed(s, 99))
	assert.Equal(t, hashLen16(Hash64(s)-7, 99), Hash64WithSeeds(s, 7, 99))
	assert.Equal(t, Hash64WithSeeds(s, k2, 5), Hash64WithSeed(s, 5))
}

// TestReferenceVectors replays the slices of the reference test suite
// against an independent implementation.
func TestReferenceVectors(t *testing.T) {
	const (
		testSize = 300
		seed0    = 1234567
		seed1    = k0
	)
	data := testutil.CityTestData(testutil.CityTestDataSize)

	check := func(t *testing.T, s []byte) {
		t.Helper()
		assert.Equal(t, cityhash.Hash32(s), Hash32(s))
		assert.Equal(t, cityhash.Hash64(s), Hash64(s))
		assert.Equal(t, cityhash.Hash64WithSeed(s, seed0), Hash64WithSeed(s, seed0))
		assert.Equal(t, cityhash.Hash64WithSeeds(s, seed0, seed1), Hash64WithSeeds(s, seed0, seed1))

		lo, hi := cityhash.Hash128(s)
		assert.Equal(t, Uint128{Lo: lo, Hi: hi}, Hash128(s))

		lo, hi = cityhash.Hash128WithSeed(s, seed0, seed1)
		assert.Equal(t, Uint128{Lo: lo, Hi: hi}, Hash128WithSeed(s, Uint128{Lo: seed0, Hi: seed1}))
	}

	for i := 0; i < testSize-1; i++ {
		check(t, testutil.Exact(data[i*i:i*i+i]))
	}
	check(t, data)
}

func TestHash128to64(t *testing.T) {
	x := Uint128{Lo: 0x0123456789abcdef, Hi: 0xfedcba9876543210}
	assert.Equal(t, hashLen16Mul(x.Lo, x.Hi, 0x9ddfea08eb382d69), Hash128to64(x))
}

func TestUint128(t *testing.T) {
	u := Uint128{Lo: 0x0807060504030201, Hi: 0x100f0e0d0c0b0a09}

	assert.Equal(t, "100f0e0d0c0b0a090807060504030201", u.String())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, u.Bytes())
	assert.Equal(t, [2]uint64{u.Lo, u.Hi}, u.Uint64s())
}

func TestHasherByteOrder(t *testing.T) {
	le := New()
	assert.Equal(t, LittleEndian, le.ByteOrder())
	assert.Equal(t, "little-endian", LittleEndian.String())
	assert.Equal(t, "host-endian", HostEndian.String())
	assert.Equal(t, "unknown", ByteOrder(9).String())

	host := New(WithByteOrder(HostEndian))
	assert.Equal(t, HostEndian, host.ByteOrder())

	if cpu.IsBigEndian {
		t.Skip("host-endian output diverges from the reference on big-endian hosts")
	}

	data := testutil.CityTestData(1024)
	for _, n := range []int{0, 4, 13, 33, 65, 200, 1024} {
		s := data[:n]
		assert.Equal(t, le.Hash32(s), host.Hash32(s))
		assert.Equal(t, le.Hash64(s), host.Hash64(s))
		assert.Equal(t, le.Hash128(s), host.Hash128(s))
	}
}

func TestPrimitives(t *testing.T) {
	assert.Equal(t, uint64(0x8000000000000000), rotate64(1, 1))
	assert.Equal(t, uint64(0x0123456789abcdef), rotate64(0x0123456789abcdef, 0))
	assert.Equal(t, uint32(0x80000000), rotate32(1, 1))
	assert.Equal(t, uint64(1)<<17|1, shiftMix(uint64(1)<<17|1))
	assert.Equal(t, uint64(1)<<63^1<<16, shiftMix(uint64(1)<<63))
	assert.Equal(t, uint32(0), fmix(0))

	got := weakHashLen32(1, 2, 3, 4, 5, 6)
	a := uint64(5) + 1
	b := rotate64(6+a+4, 21)
	c := a
	a += 2 + 3
	b += rotate64(a, 44)
	assert.Equal(t, Uint128{Lo: a + 4, Hi: b + c}, got)
}

func BenchmarkHash64(b *testing.B) {
	for _, n := range []int{8, 32, 64, 256, 4096} {
		data := testutil.CityTestData(n)
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for b.Loop() {
				_ = Hash64(data)
			}
		})
	}
}

func BenchmarkHash128(b *testing.B) {
	for _, n := range []int{16, 127, 256, 4096} {
		data := testutil.CityTestData(n)
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for b.Loop() {
				_ = Hash128(data)
			}
		})
	}
}

func BenchmarkHash32(b *testing.B) {
	for _, n := range []int{4, 12, 24, 256} {
		data := testutil.CityTestData(n)
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for b.Loop() {
				_ = Hash32(data)
			}
		})
	}
}
