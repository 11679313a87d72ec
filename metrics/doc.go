// Package metrics exports hashkit operational metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := metrics.NewPrometheusCollector(reg, "hashkit")
//	d, _ := hashkit.NewDigester(store, hashkit.WithMetricsCollector(mc))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package metrics
