package fingerprint

import "github.com/hupe1980/hashkit/city"

// Of returns the 64-bit fingerprint of b: its CityHash64.
func Of(b []byte) uint64 {
	return city.Hash64(b)
}
