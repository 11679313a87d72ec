// Package blobstore provides read access to the blobs hashkit digests.
//
// BlobStore is the interface for listing and opening named, immutable
// blobs. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-process map, for tests and embedding
//   - CachingStore: block cache in front of any other store
//   - s3.Store: Amazon S3 with range reads and parallel whole-object fetches
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
//	type Blob interface {
//	    ReadAt(ctx, p, off) (int, error)
//	    Size() int64
//	    Close() error
//	}
//
// Blobs may additionally implement Mappable (zero-copy access) or Fetcher
// (efficient whole-object retrieval); ReadAll uses whichever is available.
package blobstore
