//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapReadOnly(fh *os.File, n int) (*view, error) {
	section, err := windows.CreateFileMapping(windows.Handle(fh.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, err
	}
	// A mapped view pins the section object, so the handle can go now.
	defer windows.CloseHandle(section)

	base, err := windows.MapViewOfFile(section, windows.FILE_MAP_READ, 0, 0, uintptr(n))
	if err != nil {
		return nil, err
	}
	return &view{
		buf:     unsafe.Slice((*byte)(unsafe.Pointer(base)), n),
		release: func() error { return windows.UnmapViewOfFile(base) },
	}, nil
}

func advise([]byte, AccessPattern) error {
	return nil
}
