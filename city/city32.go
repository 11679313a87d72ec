package city

import "math/bits"

// Hash32 returns the 32-bit CityHash of s.
func (ch *Hasher) Hash32(s []byte) uint32 {
	n := len(s)
	switch {
	case n <= 4:
		return hash32Len0to4(s)
	case n <= 12:
		return ch.hash32Len5to12(s)
	case n <= 24:
		return ch.hash32Len13to24(s)
	}

	// n > 24
	h := uint32(n)
	g := c1 * uint32(n)
	f := g
	a0 := rotate32(ch.fetch32(s, n-4)*c1, 17) * c2
	a1 := rotate32(ch.fetch32(s, n-8)*c1, 17) * c2
	a2 := rotate32(ch.fetch32(s, n-16)*c1, 17) * c2
	a3 := rotate32(ch.fetch32(s, n-12)*c1, 17) * c2
	a4 := rotate32(ch.fetch32(s, n-20)*c1, 17) * c2
	h ^= a0
	h = rotate32(h, 19)
	h = h*5 + 0xe6546b64
	h ^= a2
	h = rotate32(h, 19)
	h = h*5 + 0xe6546b64
	g ^= a1
	g = rotate32(g, 19)
	g = g*5 + 0xe6546b64
	g ^= a3
	g = rotate32(g, 19)
	g = g*5 + 0xe6546b64
	f += a4
	f = rotate32(f, 19)
	f = f*5 + 0xe6546b64

	for pos, iters := 0, (n-1)/20; iters > 0; pos, iters = pos+20, iters-1 {
		a0 := rotate32(ch.fetch32(s, pos)*c1, 17) * c2
		a1 := ch.fetch32(s, pos+4)
		a2 := rotate32(ch.fetch32(s, pos+8)*c1, 17) * c2
		a3 := rotate32(ch.fetch32(s, pos+12)*c1, 17) * c2
		a4 := ch.fetch32(s, pos+16)
		h ^= a0
		h = rotate32(h, 18)
		h = h*5 + 0xe6546b64
		f += a1
		f = rotate32(f, 19)
		f *= c1
		g += a2
		g = rotate32(g, 18)
		g = g*5 + 0xe6546b64
		h ^= a3 + a1
		h = rotate32(h, 19)
		h = h*5 + 0xe6546b64
		g ^= a4
		g = bits.ReverseBytes32(g) * 5
		h += a4 * 5
		h = bits.ReverseBytes32(h)
		f += a0
		f, g, h = g, h, f
	}

	g = rotate32(g, 11) * c1
	g = rotate32(g, 17) * c1
	f = rotate32(f, 11) * c1
	f = rotate32(f, 17) * c1
	h = rotate32(h+g, 19)
	h = h*5 + 0xe6546b64
	h = rotate32(h, 17) * c1
	h = rotate32(h+f, 19)
	h = h*5 + 0xe6546b64
	h = rotate32(h, 17) * c1
	return h
}

// hash32Len0to4 folds bytes as signed 8-bit values, as the reference does.
func hash32Len0to4(s []byte) uint32 {
	b := uint32(0)
	c := uint32(9)
	for _, v := range s {
		b = b*c1 + uint32(int8(v))
		c ^= b
	}
	return fmix(mur(b, mur(uint32(len(s)), c)))
}

func (ch *Hasher) hash32Len5to12(s []byte) uint32 {
	n := len(s)
	a := uint32(n)
	b := uint32(n) * 5
	c := uint32(9)
	d := b
	a += ch.fetch32(s, 0)
	b += ch.fetch32(s, n-4)
	c += ch.fetch32(s, (n>>1)&4)
	return fmix(mur(c, mur(b, mur(a, d))))
}

func (ch *Hasher) hash32Len13to24(s []byte) uint32 {
	n := len(s)
	a := ch.fetch32(s, (n>>1)-4)
	b := ch.fetch32(s, 4)
	c := ch.fetch32(s, n-8)
	d := ch.fetch32(s, n>>1)
	e := ch.fetch32(s, 0)
	f := ch.fetch32(s, n-4)
	h := uint32(n)
	return fmix(mur(f, mur(e, mur(d, mur(c, mur(b, mur(a, h)))))))
}
