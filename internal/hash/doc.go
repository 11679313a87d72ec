// Package hash names the hash algorithms hashkit can apply to whole inputs
// and provides the CRC32-Castagnoli checksum.
//
// # Registry
//
//	alg, ok := hash.Lookup(hash.City64)
//	digest := alg.Sum(data) // 8 bytes, big-endian
//
// Names returns every registered name in sorted order; it backs the
// "algorithms" command and the validation of WithAlgorithm.
//
// # CRC32-Castagnoli (CRC32C)
//
//	checksum := hash.CRC32C(data)
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
//
// Go's crc32 package uses SSE4.2 or the ARM CRC extension when available.
package hash
