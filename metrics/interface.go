package metrics

// MetricsCollector creates application metrics registered on the same
// registry (and served by the same endpoint) as the operation metrics.
//
// All names are prefixed with the configured namespace and every metric
// carries the "service" label.
type MetricsCollector interface {
	// CreateCounter creates a counter, e.g. for conversions per tenant.
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates a histogram with the given buckets; nil
	// buckets mean prometheus.DefBuckets.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge creates a gauge.
	CreateGauge(name, help string, labels []string) Gauge
}
