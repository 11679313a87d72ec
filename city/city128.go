package city

// Hash128 returns the 128-bit CityHash of s.
//
// Inputs of at least 16 bytes seed the hash from their first 16 bytes and
// hash the remainder; shorter inputs use a fixed seed.
func (ch *Hasher) Hash128(s []byte) Uint128 {
	if len(s) >= 16 {
		return ch.Hash128WithSeed(s[16:], Uint128{
			Lo: ch.fetch64(s, 0),
			Hi: ch.fetch64(s, 8) + k0,
		})
	}
	return ch.Hash128WithSeed(s, Uint128{Lo: k0, Hi: k1})
}

// Hash128WithSeed returns the 128-bit CityHash of s starting from seed.
func (ch *Hasher) Hash128WithSeed(s []byte, seed Uint128) Uint128 {
	n := len(s)
	if n < 128 {
		return ch.cityMurmur(s, seed)
	}

	// We expect n >= 128 to be the common case. Keep 56 bytes of state:
	// v, w, x, y, and z.
	x := seed.Lo
	y := seed.Hi
	z := uint64(n) * k1
	vLo := rotate64(y^k1, 49)*k1 + ch.fetch64(s, 0)
	st := state{
		x: x,
		y: y,
		z: z,
		v: Uint128{Lo: vLo, Hi: rotate64(vLo, 42)*k1 + ch.fetch64(s, 8)},
		w: Uint128{Lo: rotate64(y+z, 35)*k1 + x, Hi: rotate64(x+ch.fetch64(s, 88), 53) * k1},
	}

	// Same inner round as Hash64, two rounds per full 128-byte block.
	pos := 0
	for rounds := n / 128 * 2; rounds > 0; rounds-- {
		st = ch.round(st, s, pos)
		pos += 64
	}
	n -= pos

	x, y, z = st.x, st.y, st.z
	v, w := st.v, st.w
	x += rotate64(v.Lo+z, 49) * k0
	y = y*k0 + rotate64(w.Hi, 37)
	z = z*k0 + rotate64(w.Lo, 27)
	w.Lo *= 9
	v.Lo *= k0

	// If 0 < n < 128, hash up to 4 chunks of 32 bytes each from the end of s.
	for tailDone := 0; tailDone < n; {
		tailDone += 32
		off := pos + n - tailDone
		y = rotate64(x+y, 42)*k0 + v.Hi
		w.Lo += ch.fetch64(s, off+16)
		x = x*k0 + w.Lo
		z += w.Hi + ch.fetch64(s, off)
		w.Hi += v.Lo
		v = ch.weakHashLen32WithSeeds(s, off, v.Lo+z, v.Hi)
		v.Lo *= k0
	}

	// At this point our 56 bytes of state should contain more than enough
	// information for a strong 128-bit hash. We use two different
	// 56-byte-to-8-byte hashes to get a 16-byte final result.
	x = hashLen16(x, v.Lo)
	y = hashLen16(y+z, w.Lo)
	return Uint128{
		Lo: hashLen16(x+v.Hi, w.Hi) + y,
		Hi: hashLen16(x+w.Hi, y+v.Hi),
	}
}

// cityMurmur is the Murmur-inspired 128-bit hash used for inputs shorter
// than 128 bytes.
func (ch *Hasher) cityMurmur(s []byte, seed Uint128) Uint128 {
	n := len(s)
	a := seed.Lo
	b := seed.Hi
	var c, d uint64
	if n <= 16 {
		a = shiftMix(a*k1) * k1
		c = b*k1 + ch.hashLen0to16(s)
		if n >= 8 {
			d = shiftMix(a + ch.fetch64(s, 0))
		} else {
			d = shiftMix(a + c)
		}
	} else {
		c = hashLen16(ch.fetch64(s, n-8)+k1, a)
		d = hashLen16(b+uint64(n), c+ch.fetch64(s, n-16))
		a += d
		for pos := 0; pos < n-16; pos += 16 {
			a ^= shiftMix(ch.fetch64(s, pos)*k1) * k1
			a *= k1
			b ^= a
			c ^= shiftMix(ch.fetch64(s, pos+8)*k1) * k1
			c *= k1
			d ^= c
		}
	}
	a = hashLen16(a, c)
	b = hashLen16(d, b)
	return Uint128{Lo: a ^ b, Hi: hashLen16(b, a)}
}
