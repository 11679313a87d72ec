package blobstore

import (
	"context"
	"errors"
	"io"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hashkit/internal/cache"
	"github.com/hupe1980/hashkit/resource"
)

// DefaultBlockSize is the cache block size used when none is given.
const DefaultBlockSize = 256 << 10

// CachingStore wraps a BlobStore and caches fixed-size blocks of blob
// content in memory. It pays off for remote stores when the same blobs are
// read more than once, e.g. when digesting with several algorithms.
type CachingStore struct {
	inner     BlobStore
	cache     *cache.ShardedLRU[[]byte]
	blockSize int64
}

// NewCachingStore creates a CachingStore holding at most capacity bytes.
// blockSize defaults to DefaultBlockSize if <= 0. If rc is non-nil, cached
// bytes are reserved from its memory budget.
func NewCachingStore(inner BlobStore, capacity, blockSize int64, rc *resource.Controller) *CachingStore {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &CachingStore{
		inner:     inner,
		cache:     cache.NewShardedLRU[[]byte](capacity, cache.Bytes, rc),
		blockSize: blockSize,
	}
}

// Open opens the inner blob and wraps it with the block cache.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &cachingBlob{
		inner:     b,
		cache:     s.cache,
		name:      name,
		blockSize: s.blockSize,
	}, nil
}

// List is passed through uncached.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns block cache hits and misses.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}

type cachingBlob struct {
	inner     Blob
	cache     *cache.ShardedLRU[[]byte]
	name      string
	blockSize int64
}

func (b *cachingBlob) Close() error {
	return b.inner.Close()
}

func (b *cachingBlob) Size() int64 {
	return b.inner.Size()
}

func (b *cachingBlob) key(blk int64) string {
	return b.name + "#" + strconv.FormatInt(blk, 10)
}

func (b *cachingBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	size := b.Size()
	if off < 0 || off >= size {
		return 0, io.EOF
	}
	end := min(off+int64(len(p)), size)

	startBlock := off / b.blockSize
	endBlock := (end - 1) / b.blockSize

	blocks, err := b.fetchBlocks(ctx, startBlock, endBlock)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, data := range blocks {
		blkStart := (startBlock + int64(i)) * b.blockSize
		from := max(off, blkStart)
		to := min(end, blkStart+int64(len(data)))
		if to <= from {
			continue
		}
		total += copy(p[from-off:], data[from-blkStart:to-blkStart])
	}

	if total < len(p) {
		return total, io.EOF
	}
	return total, nil
}

// fetchBlocks returns blocks startBlock..endBlock, reading contiguous runs
// of missing blocks from the inner blob with one request each.
func (b *cachingBlob) fetchBlocks(ctx context.Context, startBlock, endBlock int64) ([][]byte, error) {
	blocks := make([][]byte, endBlock-startBlock+1)

	type run struct{ start, count int64 }
	var missing []run

	for blk := startBlock; blk <= endBlock; blk++ {
		if data, ok := b.cache.Get(b.key(blk)); ok {
			blocks[blk-startBlock] = data
			continue
		}
		if n := len(missing); n > 0 && missing[n-1].start+missing[n-1].count == blk {
			missing[n-1].count++
		} else {
			missing = append(missing, run{start: blk, count: 1})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(16)

	for _, r := range missing {
		g.Go(func() error {
			byteStart := r.start * b.blockSize
			byteSize := min(r.count*b.blockSize, b.Size()-byteStart)

			buf := make([]byte, byteSize)
			n, err := b.inner.ReadAt(gctx, buf, byteStart)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			buf = buf[:n]

			for i := int64(0); i < r.count; i++ {
				lo := i * b.blockSize
				if lo >= int64(len(buf)) {
					break
				}
				hi := min(lo+b.blockSize, int64(len(buf)))
				// Copy so a cached block does not pin the whole run buffer.
				block := append([]byte(nil), buf[lo:hi]...)
				blocks[r.start-startBlock+i] = block

				// A truncated block stays uncached so the next read retries it.
				if hi-lo == b.blockSize || byteStart+hi == b.Size() {
					b.cache.Set(b.key(r.start+i), block)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}
