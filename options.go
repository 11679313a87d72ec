package hashkit

import (
	"log/slog"

	"github.com/hupe1980/hashkit/internal/hash"
	"github.com/hupe1980/hashkit/resource"
)

type options struct {
	algorithm        string
	decompress       bool
	maxBlobSize      int64
	maxWorkers       int
	ioLimit          int64
	controller       *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Digester.
type Option func(*options)

// WithAlgorithm selects the digest algorithm by registry name
// (see Algorithms). Defaults to "city64".
func WithAlgorithm(name string) Option {
	return func(o *options) {
		o.algorithm = name
	}
}

// WithDecompression enables transparent decoding of gzip, zstd and lz4
// inputs before hashing. The digest is then computed over the decoded bytes.
func WithDecompression(enabled bool) Option {
	return func(o *options) {
		o.decompress = enabled
	}
}

// WithMaxBlobSize rejects blobs larger than limit bytes with
// *ErrBlobTooLarge. With decompression enabled the limit also applies to
// the decoded size. If limit <= 0, blobs are unbounded.
func WithMaxBlobSize(limit int64) Option {
	return func(o *options) {
		o.maxBlobSize = limit
	}
}

// WithMaxWorkers bounds the number of blobs SumAll hashes concurrently.
// Defaults to 1.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithIOLimit caps the read throughput across all workers in bytes per
// second. If 0, reads are unthrottled.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

// WithResourceController shares worker and IO limits between several
// Digesters, for example one per algorithm over the same store.
// It takes precedence over WithMaxWorkers and WithIOLimit.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hashkit.BasicMetricsCollector{}
//	d, _ := hashkit.NewDigester(store, hashkit.WithMetricsCollector(metrics))
//	// ... use d ...
//	stats := metrics.GetStats()
//	fmt.Printf("Hashed: %d bytes, Avg latency: %dns\n", stats.HashBytes, stats.HashAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hashkit.NewJSONLogger(slog.LevelInfo)
//	d, _ := hashkit.NewDigester(store, hashkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		algorithm:        hash.City64,
		maxWorkers:       1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
