// Package mmap provides read-only memory-mapped file access.
//
// Hashing a local blob through a mapping avoids copying it through a read
// buffer: the hash functions consume the mapped bytes directly.
//
// # Usage
//
//	m, err := mmap.Open("data.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	sum := city.Hash64(m.Bytes())
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// Close is idempotent. Callers must not touch the slice returned by Bytes
// after Close returns.
package mmap
