// Package fingerprint tracks which inputs have been seen by their
// CityHash64 fingerprint.
//
// Set is exact and grows with the number of fingerprints. Filter is a
// fixed-size Bloom filter that trades a small false-positive rate for
// bounded memory:
//
//	seen := fingerprint.NewSet()
//	if !seen.Add(data) {
//	    // duplicate
//	}
//
//	approx, _ := fingerprint.NewFilter(1_000_000, 0.001)
//	if approx.Has(data) { ... }
//	approx.Add(data)
package fingerprint
