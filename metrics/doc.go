// Package metrics exposes convert-lab operations as Prometheus metrics.
//
// *Metrics implements observability.Observer: plug it into the converter
// registry (WithObserver, or through fx) and every register, convert and
// clear operation is counted and timed. It also implements
// MetricsCollector for custom application metrics on the same registry.
//
// # Metrics
//
//	convert_lab_operations_total{component,operation,outcome,service}
//	convert_lab_operation_duration_seconds{component,operation,service}
//	convert_lab_converters_registered{component,service}
//
// outcome is "ok" or the converter error kind code, for example
// "converter.no_converter_found", so failed lookups and failing converters
// can be told apart.
//
// With IncludeSystem the Go runtime, process and build info collectors are
// registered too.
//
// # Direct Usage
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "billing", Address: ""})
//	registry := converter.NewRegistry(converter.Config{}).WithObserver(m)
//	mux.Handle("/metrics", m.Handler())
//
// # FX Module Integration
//
//	app := fx.New(
//		config.FXModule,
//		metrics.FXModule,   // serves METRICS_ADDRESS, provides observability.Observer
//		converter.FXModule,
//	)
//
// # Configuration
//
//	METRICS_ADDRESS=:9091
//	METRICS_NAMESPACE=convert_lab
//	METRICS_SERVICE_NAME=billing
//	METRICS_INCLUDE_SYSTEM=true
//	METRICS_DURATION_BUCKETS=0.0001,0.001,0.01
package metrics
