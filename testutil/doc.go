// Package testutil provides testing utilities for hashkit.
//
// This package is intended for use in tests and benchmarks only.
//
// # Reference Data
//
// CityTestData reproduces the byte vector the reference CityHash test suite
// hashes, so vectors can be compared slice by slice:
//
//	data := testutil.CityTestData(testutil.CityTestDataSize)
//	for i := 0; i < 300; i++ {
//	    s := testutil.Exact(data[i*i : i*i+i])
//	    ...
//	}
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(129)            // len == cap
//	keys := rng.Keys("user", 10000)  // distinct ring keys
//	idx := rng.Zipf(100, 1.5)        // skewed choice
package testutil
