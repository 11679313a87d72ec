package mmap

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync/atomic"
)

// view is one live mapping. release is nil for empty files, which are
// never handed to the kernel.
type view struct {
	buf     []byte
	release func() error
}

// File is a read-only view of a whole file. The view is dropped by Close;
// the length stays readable afterwards.
type File struct {
	v      atomic.Pointer[view]
	length int
}

// Open maps the file at path read-only. The descriptor is closed before
// Open returns; the mapping outlives it.
func Open(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() > math.MaxInt {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrTooLarge, path, st.Size())
	}

	f := &File{length: int(st.Size())}
	if f.length == 0 {
		f.v.Store(&view{})
		return f, nil
	}

	v, err := mapReadOnly(fh, f.length)
	if err != nil {
		return nil, fmt.Errorf("mmap: %s: %w", path, err)
	}
	f.v.Store(v)
	return f, nil
}

// Close releases the mapping. Only the first call does any work.
func (f *File) Close() error {
	v := f.v.Swap(nil)
	if v == nil || v.release == nil {
		return nil
	}
	return v.release()
}

// Bytes returns the mapped contents, or nil once the file is closed.
// The slice must not be used after Close.
func (f *File) Bytes() []byte {
	if v := f.v.Load(); v != nil {
		return v.buf
	}
	return nil
}

// Size is the file length at the time it was opened.
func (f *File) Size() int {
	return f.length
}

// Advise passes an access hint to the kernel.
func (f *File) Advise(pattern AccessPattern) error {
	v := f.v.Load()
	switch {
	case v == nil:
		return ErrClosed
	case len(v.buf) == 0:
		return nil
	}
	return advise(v.buf, pattern)
}

// ReadAt implements io.ReaderAt over the mapped bytes.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	v := f.v.Load()
	if v == nil {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(v.buf)) {
		return 0, io.EOF
	}
	n := copy(p, v.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
