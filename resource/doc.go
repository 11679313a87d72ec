// Package resource implements the Controller shared by concurrent hashing
// jobs.
//
// The Controller governs three resources:
//
//   - Workers: how many blobs are read and hashed at once (weighted semaphore)
//   - IO: read bandwidth across all workers (token bucket)
//   - Memory: bytes retained by caches (non-blocking, fail-fast)
//
// # Workers
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 8})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 << 20, // 100MB/s
//	})
//
//	if err := rc.AcquireIO(ctx, len(chunk)); err != nil {
//	    return err
//	}
//
// # Memory
//
// TryAcquireMemory never blocks; a cache that is refused simply does not
// retain the entry.
//
// # Nil Safety
//
// All methods handle a nil Controller: they become no-ops.
package resource
