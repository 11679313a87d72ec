package fingerprint

import (
	"errors"
	"sync"

	"github.com/greatroar/blobloom"
)

// ErrInvalidFilterConfig is returned by NewFilter for a zero capacity or a
// false-positive rate outside (0, 1).
var ErrInvalidFilterConfig = errors.New("fingerprint: invalid filter config")

// Filter is an approximate set of fingerprints backed by a Bloom filter.
// Has may report false positives at about the configured rate, never false
// negatives. It is safe for concurrent use.
type Filter struct {
	mu sync.RWMutex
	bf *blobloom.Filter
}

// NewFilter sizes a filter for capacity fingerprints at false-positive
// rate fpRate.
func NewFilter(capacity uint64, fpRate float64) (*Filter, error) {
	if capacity == 0 || !(fpRate > 0 && fpRate < 1) {
		return nil, ErrInvalidFilterConfig
	}
	return &Filter{
		bf: blobloom.NewOptimized(blobloom.Config{
			Capacity: capacity,
			FPRate:   fpRate,
		}),
	}, nil
}

// Add inserts the fingerprint of b.
func (f *Filter) Add(b []byte) {
	f.AddFingerprint(Of(b))
}

// AddFingerprint inserts fp.
func (f *Filter) AddFingerprint(fp uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bf.Add(fp)
}

// Has reports whether the fingerprint of b may be in the filter.
func (f *Filter) Has(b []byte) bool {
	return f.HasFingerprint(Of(b))
}

// HasFingerprint reports whether fp may be in the filter.
func (f *Filter) HasFingerprint(fp uint64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bf.Has(fp)
}

// Cardinality estimates the number of distinct fingerprints added.
func (f *Filter) Cardinality() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bf.Cardinality()
}
