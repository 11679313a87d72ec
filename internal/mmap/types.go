package mmap

import "errors"

// AccessPattern is a paging hint passed to Advise.
type AccessPattern int

const (
	AccessNormal AccessPattern = iota
	// AccessSequential suits whole-blob hashing: read ahead aggressively and
	// drop pages once consumed.
	AccessSequential
	// AccessRandom disables read-ahead, for sparse ReadAt calls.
	AccessRandom
)

var (
	// ErrClosed is returned by reads and hints on a File after Close.
	ErrClosed = errors.New("mmap: read from unmapped file")
	// ErrTooLarge is returned by Open when the file does not fit in the
	// address space.
	ErrTooLarge = errors.New("mmap: file exceeds addressable memory")
	// ErrInvalidOffset is returned by ReadAt for negative offsets.
	ErrInvalidOffset = errors.New("mmap: offset before start of file")
)
