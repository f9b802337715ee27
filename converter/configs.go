package converter

// DefaultTracerName is the instrumentation name used for conversion spans
// when Config.TracerName is empty.
const DefaultTracerName = "github.com/aalemi-dev/convert-lab/converter"

// Config defines the configuration of a Registry.
type Config struct {
	// ServiceName identifies the owning service in log entries.
	//
	// This setting can be configured via:
	//   - Environment variable CONVERTER_SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// EnableTracing controls whether ConvertContext opens a span for every
	// resolved conversion. Without a tracer injected through WithTracer (or the
	// fx module) spans are no-ops either way.
	//
	// This setting can be configured via:
	//   - Environment variable CONVERTER_ENABLE_TRACING
	EnableTracing bool `yaml:"enable_tracing" env:"ENABLE_TRACING" envDefault:"true"`

	// TracerName is the instrumentation scope of conversion spans.
	// Defaults to DefaultTracerName.
	//
	// This setting can be configured via:
	//   - Environment variable CONVERTER_TRACER_NAME
	TracerName string `yaml:"tracer_name" env:"TRACER_NAME"`

	// LogConversions enables a debug entry for every successful conversion.
	// Failures are logged regardless.
	//
	// This setting can be configured via:
	//   - Environment variable CONVERTER_LOG_CONVERSIONS
	LogConversions bool `yaml:"log_conversions" env:"LOG_CONVERSIONS"`
}
