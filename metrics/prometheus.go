package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/hashkit"
)

// PrometheusCollector implements hashkit.MetricsCollector with Prometheus
// counters, histograms and gauges.
type PrometheusCollector struct {
	hashes        *prometheus.CounterVec
	hashBytes     *prometheus.CounterVec
	hashLatency   *prometheus.HistogramVec
	lookups       *prometheus.CounterVec
	lookupLatency prometheus.Histogram
	rebuilds      prometheus.Counter
	ringNodes     prometheus.Gauge
	ringPoints    prometheus.Gauge
}

var _ hashkit.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector registers hashkit metrics with reg under
// namespace. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &PrometheusCollector{
		hashes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hash_operations_total",
			Help:      "Total number of blob digests",
		}, []string{"algorithm", "status"}),
		hashBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hash_bytes_total",
			Help:      "Total number of bytes hashed",
		}, []string{"algorithm"}),
		hashLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "hash_duration_seconds",
			Help:      "Latency of blob digests, including reads",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
		lookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "lookups_total",
			Help:      "Total number of ring lookups",
		}, []string{"status"}),
		lookupLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "lookup_duration_seconds",
			Help:      "Latency of ring lookups",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}),
		rebuilds: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "rebuilds_total",
			Help:      "Total number of ring rebuilds",
		}),
		ringNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "nodes",
			Help:      "Current number of ring members",
		}),
		ringPoints: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "points",
			Help:      "Current number of ring points",
		}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordHash implements hashkit.MetricsCollector.
func (p *PrometheusCollector) RecordHash(algorithm string, bytes int64, duration time.Duration, err error) {
	p.hashes.WithLabelValues(algorithm, status(err)).Inc()
	p.hashLatency.WithLabelValues(algorithm).Observe(duration.Seconds())
	if err == nil {
		p.hashBytes.WithLabelValues(algorithm).Add(float64(bytes))
	}
}

// RecordLookup implements hashkit.MetricsCollector.
func (p *PrometheusCollector) RecordLookup(duration time.Duration, err error) {
	p.lookups.WithLabelValues(status(err)).Inc()
	p.lookupLatency.Observe(duration.Seconds())
}

// RecordRebuild implements hashkit.MetricsCollector.
func (p *PrometheusCollector) RecordRebuild(nodes, points int) {
	p.rebuilds.Inc()
	p.ringNodes.Set(float64(nodes))
	p.ringPoints.Set(float64(points))
}
