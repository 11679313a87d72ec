package hashkit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hashkit/blobstore"
)

var (
	// ErrNotFound is returned when a named blob does not exist.
	ErrNotFound = blobstore.ErrNotFound

	// ErrEmptyRing is returned by ring lookups when no node is registered.
	ErrEmptyRing = errors.New("hash ring is empty")
)

// ErrUnknownAlgorithm indicates a hash algorithm name that is not registered.
type ErrUnknownAlgorithm struct {
	Name string
}

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("unknown algorithm: %q", e.Name)
}

// ErrBlobTooLarge indicates a blob whose (decoded) size exceeds the
// configured limit.
//
// The underlying error, if any, can be accessed via errors.Unwrap.
type ErrBlobTooLarge struct {
	Name  string
	Size  int64
	Limit int64
	cause error
}

func (e *ErrBlobTooLarge) Error() string {
	if e.Size < 0 {
		return fmt.Sprintf("blob %q too large: exceeds limit %d", e.Name, e.Limit)
	}
	return fmt.Sprintf("blob %q too large: %d bytes, limit %d", e.Name, e.Size, e.Limit)
}

func (e *ErrBlobTooLarge) Unwrap() error { return e.cause }
