package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a Prometheus registry, records the operations reported by
// instrumented packages and serves them over HTTP.
//
// It implements observability.Observer and MetricsCollector.
type Metrics struct {
	// Server serves Handler on Config.Address; nil when the address is empty.
	Server *http.Server

	// Registry holds every metric created by this instance.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	operations Counter
	durations  Histogram
	registered Gauge
}

// NewMetrics creates the registry and the operation metrics:
//
//	<namespace>_operations_total{component,operation,outcome}
//	<namespace>_operation_duration_seconds{component,operation}
//	<namespace>_converters_registered{component}
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "billing"})
//	registry := converter.NewRegistry(converter.Config{}).WithObserver(m)
//	http.Handle("/metrics", m.Handler())
func NewMetrics(cfg Config) *Metrics {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	buckets := cfg.DurationBuckets
	if len(buckets) == 0 {
		buckets = DefaultDurationBuckets
	}

	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.IncludeSystem {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m := &Metrics{
		Registry:   registry,
		namespace:  namespace,
		registerer: registerer,
	}

	m.operations = m.CreateCounter("operations_total",
		"Completed operations by component, operation and outcome.",
		[]string{"component", "operation", "outcome"})
	m.durations = m.CreateHistogram("operation_duration_seconds",
		"Duration of completed operations.",
		[]string{"component", "operation"}, buckets)
	m.registered = m.CreateGauge("converters_registered",
		"Converters currently registered.",
		[]string{"component"})

	if cfg.Address != "" {
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: m.Handler(),
		}
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
