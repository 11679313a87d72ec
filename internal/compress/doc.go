// Package compress sniffs and decodes compressed blobs so their content,
// rather than their container, can be hashed.
//
// Supported containers, detected by magic bytes:
//
//	Format   Magic          Library
//	zstd     28 b5 2f fd    klauspost/compress/zstd
//	gzip     1f 8b          klauspost/compress/gzip
//	lz4      04 22 4d 18    pierrec/lz4/v4 (frame format)
//
// Anything else decodes to itself.
package compress
