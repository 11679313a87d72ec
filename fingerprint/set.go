package fingerprint

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is an exact set of fingerprints backed by a 64-bit Roaring bitmap.
// It is safe for concurrent use.
type Set struct {
	mu sync.RWMutex
	rb *roaring64.Bitmap
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{
		rb: roaring64.New(),
	}
}

// Add inserts the fingerprint of b. It reports whether it was new.
func (s *Set) Add(b []byte) bool {
	return s.AddFingerprint(Of(b))
}

// AddFingerprint inserts fp. It reports whether it was new.
func (s *Set) AddFingerprint(fp uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.CheckedAdd(fp)
}

// Contains reports whether the fingerprint of b is in the set.
func (s *Set) Contains(b []byte) bool {
	return s.ContainsFingerprint(Of(b))
}

// ContainsFingerprint reports whether fp is in the set.
func (s *Set) ContainsFingerprint(fp uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rb.Contains(fp)
}

// Cardinality returns the number of distinct fingerprints.
func (s *Set) Cardinality() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rb.GetCardinality()
}

// MarshalBinary encodes the set in the portable Roaring format.
func (s *Set) MarshalBinary() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rb.MarshalBinary()
}

// UnmarshalBinary replaces the set's content with data.
func (s *Set) UnmarshalBinary(data []byte) error {
	rb := roaring64.New()
	if err := rb.UnmarshalBinary(data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rb = rb
	return nil
}
