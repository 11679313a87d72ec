// Package ketama implements the MD5-derived hash used by Ketama consistent
// hashing (libketama, memcached clients).
//
// It is not a general-purpose hash. It exists so that ring positions match
// other Ketama implementations bit for bit.
package ketama

import (
	"crypto/md5"
	"encoding/binary"
)

// Hash32 returns the first four bytes of the MD5 digest of key, read
// little-endian.
func Hash32(key []byte) uint32 {
	sum := md5.Sum(key)
	return binary.LittleEndian.Uint32(sum[:4])
}

// Hash64 returns Hash32(key) zero-extended to 64 bits.
func Hash64(key []byte) uint64 {
	return uint64(Hash32(key))
}

// Points returns all four little-endian 32-bit words of the MD5 digest of
// key. libketama places four ring points per digest this way; Points(key)[0]
// equals Hash32(key).
func Points(key []byte) [4]uint32 {
	sum := md5.Sum(key)
	var p [4]uint32
	for i := range p {
		p[i] = binary.LittleEndian.Uint32(sum[i*4:])
	}
	return p
}
