// Package hashkit provides fast non-cryptographic hashing for Go: CityHash
// (32, 64 and 128 bit), the Ketama ring hash, and MurmurHash3, plus the
// plumbing to digest blobs from local disk, S3 or MinIO.
//
// # Quick Start
//
// One-shot hashing:
//
//	h := hashkit.CityHash64([]byte("hello"))          // 0xb48be5a931380ce8
//	lohi := hashkit.CityHash128([]byte("hello"))      // [2]uint64{lo, hi}
//	pos := hashkit.KetamaHash32([]byte("user:42"))    // ring position
//
// By algorithm name:
//
//	digest, err := hashkit.Sum("city128", data)       // big-endian, high half first
//
// # Digesting Blobs
//
// A Digester reads named blobs from a blobstore.BlobStore and hashes them,
// optionally decoding gzip, zstd or lz4 first:
//
//	store := blobstore.NewLocalStore("./artifacts")
//	d, _ := hashkit.NewDigester(store,
//	    hashkit.WithAlgorithm("city64"),
//	    hashkit.WithDecompression(true),
//	    hashkit.WithMaxWorkers(8),
//	    hashkit.WithIOLimit(64<<20),
//	)
//	results, err := d.SumAll(ctx, names)
//
// # Packages
//
//   - city: CityHash engines with explicit byte-order configuration
//   - ketama: MD5-derived ring positions
//   - ring: weighted Ketama consistent-hash ring
//   - shard: jump-hash shard index and a city-hashed concurrent map
//   - fingerprint: exact and approximate 64-bit fingerprint sets
//   - blobstore: local, memory, S3 and MinIO blob sources
//   - metrics: Prometheus MetricsCollector
package hashkit
