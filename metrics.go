package hashkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems;
// metrics.NewPrometheusCollector is a ready-made Prometheus adapter.
type MetricsCollector interface {
	// RecordHash is called after each blob digest.
	// bytes is the number of bytes hashed, err is nil if successful.
	RecordHash(algorithm string, bytes int64, duration time.Duration, err error)

	// RecordLookup is called after each ring lookup.
	RecordLookup(duration time.Duration, err error)

	// RecordRebuild is called after each ring rebuild with the new
	// membership size and point count.
	RecordRebuild(nodes, points int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordHash(string, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(time.Duration, error)              {}
func (NoopMetricsCollector) RecordRebuild(int, int)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	HashCount        atomic.Int64
	HashErrors       atomic.Int64
	HashBytes        atomic.Int64
	HashTotalNanos   atomic.Int64
	LookupCount      atomic.Int64
	LookupErrors     atomic.Int64
	LookupTotalNanos atomic.Int64
	RebuildCount     atomic.Int64
	Nodes            atomic.Int64
	Points           atomic.Int64
}

// RecordHash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHash(_ string, bytes int64, duration time.Duration, err error) {
	b.HashCount.Add(1)
	b.HashTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.HashErrors.Add(1)
		return
	}
	b.HashBytes.Add(bytes)
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, err error) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LookupErrors.Add(1)
	}
}

// RecordRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebuild(nodes, points int) {
	b.RebuildCount.Add(1)
	b.Nodes.Store(int64(nodes))
	b.Points.Store(int64(points))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		HashCount:      b.HashCount.Load(),
		HashErrors:     b.HashErrors.Load(),
		HashBytes:      b.HashBytes.Load(),
		HashAvgNanos:   avg(b.HashTotalNanos.Load(), b.HashCount.Load()),
		LookupCount:    b.LookupCount.Load(),
		LookupErrors:   b.LookupErrors.Load(),
		LookupAvgNanos: avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
		RebuildCount:   b.RebuildCount.Load(),
		Nodes:          b.Nodes.Load(),
		Points:         b.Points.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	HashCount      int64
	HashErrors     int64
	HashBytes      int64
	HashAvgNanos   int64
	LookupCount    int64
	LookupErrors   int64
	LookupAvgNanos int64
	RebuildCount   int64
	Nodes          int64
	Points         int64
}
