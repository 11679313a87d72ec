package blobstore

import (
	"context"
	"errors"
	"io"
)

const defaultChunkSize = 1 << 20

type readOptions struct {
	chunkSize int
	throttle  func(ctx context.Context, n int) error
}

// ReadOption configures ReadAll.
type ReadOption func(*readOptions)

// WithChunkSize sets the size of each ReadAt call. Defaults to 1MiB.
func WithChunkSize(n int) ReadOption {
	return func(o *readOptions) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithThrottle calls fn with the byte count before each chunk is read,
// typically to wait on a rate limiter.
func WithThrottle(fn func(ctx context.Context, n int) error) ReadOption {
	return func(o *readOptions) {
		o.throttle = fn
	}
}

// ReadAll returns the full content of b.
//
// Mappable blobs are returned without a copy; the slice is then only valid
// until b is closed. Fetcher blobs are retrieved in one call. Everything
// else is read chunk by chunk.
func ReadAll(ctx context.Context, b Blob, opts ...ReadOption) ([]byte, error) {
	o := readOptions{chunkSize: defaultChunkSize}
	for _, fn := range opts {
		fn(&o)
	}

	size := b.Size()

	if m, ok := b.(Mappable); ok {
		if err := o.wait(ctx, int(size)); err != nil {
			return nil, err
		}
		return m.Bytes()
	}

	if f, ok := b.(Fetcher); ok {
		if err := o.wait(ctx, int(size)); err != nil {
			return nil, err
		}
		return f.Fetch(ctx)
	}

	buf := make([]byte, size)
	for off := int64(0); off < size; {
		n := int(min(int64(o.chunkSize), size-off))
		if err := o.wait(ctx, n); err != nil {
			return nil, err
		}
		read, err := b.ReadAt(ctx, buf[off:off+int64(n)], off)
		off += int64(read)
		if err != nil {
			if errors.Is(err, io.EOF) && off == size {
				break
			}
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if read == 0 {
			return nil, io.ErrNoProgress
		}
	}
	return buf, nil
}

func (o *readOptions) wait(ctx context.Context, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.throttle == nil || n <= 0 {
		return nil
	}
	return o.throttle(ctx, n)
}
