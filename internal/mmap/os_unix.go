//go:build unix

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var madvice = map[AccessPattern]int{
	AccessNormal:     unix.MADV_NORMAL,
	AccessSequential: unix.MADV_SEQUENTIAL,
	AccessRandom:     unix.MADV_RANDOM,
}

func mapReadOnly(fh *os.File, n int) (*view, error) {
	buf, err := unix.Mmap(int(fh.Fd()), 0, n, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &view{
		buf:     buf,
		release: func() error { return unix.Munmap(buf) },
	}, nil
}

func advise(buf []byte, pattern AccessPattern) error {
	hint, ok := madvice[pattern]
	if !ok {
		hint = unix.MADV_NORMAL
	}
	// EINVAL only means the kernel rejected the hint.
	if err := unix.Madvise(buf, hint); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
