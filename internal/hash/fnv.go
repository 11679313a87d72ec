package hash

// FNV32 is the 32-bit "improved FNV-1" hash of the Java hash utility
// libraries: an FNV-1a loop over sign-extended bytes followed by a shift-add
// avalanche, folded to a non-negative int32. math.MinInt32 has no positive
// counterpart and is returned unchanged.
//
// It is not the FNV-1a of hash/fnv; that one is registered as fnv1a32.
func FNV32(data []byte) uint32 {
	const prime = 16777619

	h := int32(-2128831035) // 2166136261 as int32
	for _, b := range data {
		h = (h ^ int32(int8(b))) * prime
	}
	h += h << 13
	h ^= h >> 7
	h += h << 3
	h ^= h >> 17
	h += h << 5

	if h < 0 {
		h = -h
	}
	return uint32(h)
}
