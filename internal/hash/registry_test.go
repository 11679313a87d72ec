package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"city128", "city32", "city64", "crc32c",
		"fnv1a32", "fnv1a64", "fnv32",
		"ketama32", "ketama64", "metro128", "metro64",
		"murmur128", "murmur32", "murmur64",
	}, Names())
}

func TestLookup(t *testing.T) {
	_, ok := Lookup("sha1")
	assert.False(t, ok)

	for _, name := range Names() {
		alg, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, alg.Name)
		assert.Len(t, alg.Sum([]byte("hello")), alg.Size, name)
		assert.Len(t, alg.Sum(nil), alg.Size, name)
	}
}

func TestDigests(t *testing.T) {
	golden := []byte("Google发布的Hash计算算法：CityHash64 与 CityHash128")
	fox := []byte("The quick brown fox jumps over the lazy dog")
	key63 := []byte("012345678901234567890123456789012345678901234567890123456789012")

	tests := []struct {
		alg   string
		input []byte
		want  string
	}{
		{City32, golden, "a8944fbe"},
		{City64, golden, "1d408f2bbf967e2a"},
		{City128, golden, "c2f68d8b2bf4a5cf5944f1e788a18db0"},
		{Ketama32, []byte("hello"), "2a40415d"},
		{Ketama64, []byte("hello"), "000000002a40415d"},
		{Murmur32, fox, "2e4ff723"},
		{Murmur64, []byte("hello"), "cbd8a7b341bd9b02"},
		{Murmur128, []byte("hello"), "cbd8a7b341bd9b025b1e906a48ae1d19"},
		{CRC32, []byte("123456789"), "e3069283"},
		{FNV32Name, []byte("hello"), "14e65089"},
		{FNV1a32, []byte("hello"), "4f9f2cab"},
		{FNV1a64, []byte("hello"), "a430d84680aabd0b"},
		{Metro64, key63, "ad4b7006ae3d756b"},
		{Metro128, key63, "97a27450acb248059b9feda4bfe27cc7"},
	}

	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			alg, ok := Lookup(tt.alg)
			require.True(t, ok)
			assert.Equal(t, tt.want, hex.EncodeToString(alg.Sum(tt.input)))
		})
	}
}

func TestCRC32CStreaming(t *testing.T) {
	data := []byte("123456789")

	h := NewCRC32C()
	_, _ = h.Write(data[:4])
	_, _ = h.Write(data[4:])

	assert.Equal(t, CRC32C(data), h.Sum32())
	assert.Equal(t, uint32(0xe3069283), h.Sum32())
}

func TestFNV32(t *testing.T) {
	tests := []struct {
		input []byte
		want  uint32
	}{
		{nil, 0x590ff862},
		{[]byte("hello"), 0x14e65089},
		// Bytes >= 0x80 are folded in sign-extended.
		{[]byte("Google发布的Hash计算算法：CityHash64 与 CityHash128"), 0x40448364},
	}

	for _, tt := range tests {
		got := FNV32(tt.input)
		assert.Equal(t, tt.want, got, "%q", tt.input)
		assert.LessOrEqual(t, got, uint32(1)<<31)
	}
}
