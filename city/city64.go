package city

import "math/bits"

// Hash64 returns the 64-bit CityHash of s.
func (ch *Hasher) Hash64(s []byte) uint64 {
	n := len(s)
	switch {
	case n <= 16:
		return ch.hashLen0to16(s)
	case n <= 32:
		return ch.hashLen17to32(s)
	case n <= 64:
		return ch.hashLen33to64(s)
	}

	// For inputs over 64 bytes we hash the end first, and then as we
	// loop we keep 56 bytes of state: v, w, x, y, and z.
	x := ch.fetch64(s, n-40)
	y := ch.fetch64(s, n-16) + ch.fetch64(s, n-56)
	z := hashLen16(ch.fetch64(s, n-48)+uint64(n), ch.fetch64(s, n-24))
	st := state{
		x: x*k1 + ch.fetch64(s, 0),
		y: y,
		z: z,
		v: ch.weakHashLen32WithSeeds(s, n-64, uint64(n), z),
		w: ch.weakHashLen32WithSeeds(s, n-32, y+k1, x),
	}

	// Round n down to a multiple of 64 and consume 64-byte blocks from the front.
	for pos, rest := 0, (n-1)&^63; rest != 0; pos, rest = pos+64, rest-64 {
		st = ch.round(st, s, pos)
	}

	return hashLen16(
		hashLen16(st.v.Lo, st.w.Lo)+shiftMix(st.y)*k1+st.z,
		hashLen16(st.v.Hi, st.w.Hi)+st.x,
	)
}

// Hash64WithSeed hashes s and folds seed into the result.
func (ch *Hasher) Hash64WithSeed(s []byte, seed uint64) uint64 {
	return ch.Hash64WithSeeds(s, k2, seed)
}

// Hash64WithSeeds hashes s and folds both seeds into the result.
func (ch *Hasher) Hash64WithSeeds(s []byte, seed0, seed1 uint64) uint64 {
	return hashLen16(ch.Hash64(s)-seed0, seed1)
}

func (ch *Hasher) hashLen0to16(s []byte) uint64 {
	n := len(s)
	if n >= 8 {
		mul := k2 + uint64(n)*2
		a := ch.fetch64(s, 0) + k2
		b := ch.fetch64(s, n-8)
		c := rotate64(b, 37)*mul + a
		d := (rotate64(a, 25) + b) * mul
		return hashLen16Mul(c, d, mul)
	}
	if n >= 4 {
		mul := k2 + uint64(n)*2
		a := uint64(ch.fetch32(s, 0))
		return hashLen16Mul(uint64(n)+(a<<3), uint64(ch.fetch32(s, n-4)), mul)
	}
	if n > 0 {
		a := s[0]
		b := s[n>>1]
		c := s[n-1]
		y := uint32(a) + uint32(b)<<8
		z := uint32(n) + uint32(c)<<2
		return shiftMix(uint64(y)*k2^uint64(z)*k0) * k2
	}
	return k2
}

// This probably works well for 16-byte inputs as well, but it may be
// overkill in that case.
func (ch *Hasher) hashLen17to32(s []byte) uint64 {
	n := len(s)
	mul := k2 + uint64(n)*2
	a := ch.fetch64(s, 0) * k1
	b := ch.fetch64(s, 8)
	c := ch.fetch64(s, n-8) * mul
	d := ch.fetch64(s, n-16) * k2
	return hashLen16Mul(
		rotate64(a+b, 43)+rotate64(c, 30)+d,
		a+rotate64(b+k2, 18)+c,
		mul,
	)
}

func (ch *Hasher) hashLen33to64(s []byte) uint64 {
	n := len(s)
	mul := k2 + uint64(n)*2
	a := ch.fetch64(s, 0) * k2
	b := ch.fetch64(s, 8)
	c := ch.fetch64(s, n-24)
	d := ch.fetch64(s, n-32)
	e := ch.fetch64(s, 16) * k2
	f := ch.fetch64(s, 24) * 9
	g := ch.fetch64(s, n-8)
	h := ch.fetch64(s, n-16) * mul
	u := rotate64(a+g, 43) + (rotate64(b, 30)+c)*9
	v := ((a + g) ^ d) + f + 1
	w := bits.ReverseBytes64((u+v)*mul) + h
	x := rotate64(e+f, 42) + c
	y := (bits.ReverseBytes64((v+w)*mul) + g) * mul
	z := e + f + c
	a = bits.ReverseBytes64((x+z)*mul+y) + b
	b = shiftMix((z+a)*mul+d+h) * mul
	return b + x
}
