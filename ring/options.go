package ring

import "github.com/hupe1980/hashkit"

// DefaultPointsPerNode is the libketama replica count: 40 digests of four
// points each.
const DefaultPointsPerNode = 160

type options struct {
	pointsPerNode int
	hash          HashFunc
	cacheSize     int64
	logger        *hashkit.Logger
	metrics       hashkit.MetricsCollector
}

// Option configures a Ring.
type Option func(*options)

// WithPointsPerNode sets the number of points a node of weight 1 occupies.
// Values <= 0 select DefaultPointsPerNode.
func WithPointsPerNode(n int) Option {
	return func(o *options) {
		o.pointsPerNode = n
	}
}

// WithHashFunc selects the hash used for point placement and key lookup.
// Defaults to Ketama.
func WithHashFunc(h HashFunc) Option {
	return func(o *options) {
		if h != nil {
			o.hash = h
		}
	}
}

// WithLookupCache caches up to entries key-to-node results. The cache is
// purged whenever membership changes.
func WithLookupCache(entries int64) Option {
	return func(o *options) {
		o.cacheSize = entries
	}
}

// WithLogger configures structured logging for rebuilds and lookups.
func WithLogger(logger *hashkit.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for lookups and rebuilds.
func WithMetricsCollector(mc hashkit.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}
