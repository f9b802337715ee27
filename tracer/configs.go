package tracer

// Config defines the configuration of the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is the service.name resource attribute of every span.
	//
	// This setting can be configured via:
	//   - Environment variable TRACER_SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// AppEnv sets the deployment.environment and environment resource
	// attributes, e.g. "development" or "production".
	//
	// This setting can be configured via:
	//   - Environment variable TRACER_APP_ENV
	AppEnv string `yaml:"app_env" env:"APP_ENV" envDefault:"development"`

	// EnableExport sends spans to an OTLP HTTP collector, configured through
	// the standard OTEL_EXPORTER_OTLP_* variables. Without it spans are still
	// created and propagated but never leave the process.
	//
	// This setting can be configured via:
	//   - Environment variable TRACER_ENABLE_EXPORT
	EnableExport bool `yaml:"enable_export" env:"ENABLE_EXPORT"`

	// SampleRatio is the fraction of new traces sampled, in (0, 1]. Zero
	// and out-of-range values sample everything. Child spans follow their
	// parent's decision.
	//
	// This setting can be configured via:
	//   - Environment variable TRACER_SAMPLE_RATIO
	SampleRatio float64 `yaml:"sample_ratio" env:"SAMPLE_RATIO" envDefault:"1"`
}
