package city

import "math/bits"

// fetch32 loads the 4 bytes at s[off:] as a word. Reading past the end of s
// panics; the length bands never do so.
func (ch *Hasher) fetch32(s []byte, off int) uint32 {
	return ch.byteOrder.Uint32(s[off : off+4])
}

// fetch64 loads the 8 bytes at s[off:] as a word.
func (ch *Hasher) fetch64(s []byte, off int) uint64 {
	return ch.byteOrder.Uint64(s[off : off+8])
}

func rotate32(v uint32, shift int) uint32 {
	return bits.RotateLeft32(v, -shift)
}

func rotate64(v uint64, shift int) uint64 {
	return bits.RotateLeft64(v, -shift)
}

func shiftMix(v uint64) uint64 {
	return v ^ (v >> 47)
}

// fmix is the Murmur3 32-bit finalizer.
func fmix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// mur folds a into the running 32-bit hash h.
func mur(a, h uint32) uint32 {
	a *= c1
	a = rotate32(a, 17)
	a *= c2
	h ^= a
	h = rotate32(h, 19)
	return h*5 + 0xe6546b64
}

func hashLen16(u, v uint64) uint64 {
	return hashLen16Mul(u, v, kMul)
}

func hashLen16Mul(u, v, mul uint64) uint64 {
	a := (u ^ v) * mul
	a ^= a >> 47
	b := (v ^ a) * mul
	b ^= b >> 47
	b *= mul
	return b
}

// weakHashLen32 compresses four words and two seeds into 16 bytes.
// Quick and dirty.
func weakHashLen32(w, x, y, z, a, b uint64) Uint128 {
	a += w
	b = rotate64(b+a+z, 21)
	c := a
	a += x
	a += y
	b += rotate64(a, 44)
	return Uint128{Lo: a + z, Hi: b + c}
}

// weakHashLen32WithSeeds hashes s[off:off+32] with seeds a and b.
func (ch *Hasher) weakHashLen32WithSeeds(s []byte, off int, a, b uint64) Uint128 {
	return weakHashLen32(
		ch.fetch64(s, off),
		ch.fetch64(s, off+8),
		ch.fetch64(s, off+16),
		ch.fetch64(s, off+24),
		a,
		b,
	)
}

// state is the rolling register file of the long-input loops.
type state struct {
	x, y, z uint64
	v, w    Uint128
}

// round folds the 64-byte block at s[pos:] into st. The returned state has
// x and z exchanged, as every caller needs.
func (ch *Hasher) round(st state, s []byte, pos int) state {
	x := rotate64(st.x+st.y+st.v.Lo+ch.fetch64(s, pos+8), 37) * k1
	y := rotate64(st.y+st.v.Hi+ch.fetch64(s, pos+48), 42) * k1
	x ^= st.w.Hi
	y += st.v.Lo + ch.fetch64(s, pos+40)
	z := rotate64(st.z+st.w.Lo, 33) * k1
	v := ch.weakHashLen32WithSeeds(s, pos, st.v.Hi*k1, x+st.w.Lo)
	w := ch.weakHashLen32WithSeeds(s, pos+32, z+st.w.Hi, y+ch.fetch64(s, pos+16))
	return state{x: z, y: y, z: x, v: v, w: w}
}
