package logger

// Log level names accepted by Config.Level.
const (
	// Debug outputs every entry, including per-conversion traces.
	Debug = "debug"

	// Info outputs registrations, lifecycle events and above.
	Info = "info"

	// Warning outputs unexpected conversion failures and above.
	Warning = "warning"

	// Error outputs registration failures only.
	Error = "error"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config defines the configuration of the logger.
type Config struct {
	// Level is the minimum level written: "debug", "info", "warning" or
	// "error". Unknown values fall back to "info".
	//
	// This setting can be configured via:
	//   - Environment variable LOGGER_LEVEL
	Level string `yaml:"level" env:"LEVEL" envDefault:"info"`

	// EnableTracing adds trace_id and span_id from the active OpenTelemetry
	// span to entries written through the *WithContext methods.
	//
	// This setting can be configured via:
	//   - Environment variable LOGGER_ENABLE_TRACING
	EnableTracing bool `yaml:"enable_tracing" env:"ENABLE_TRACING" envDefault:"true"`

	// ServiceName populates the "service" field of every entry.
	//
	// This setting can be configured via:
	//   - Environment variable LOGGER_SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// Format selects the encoder, FormatJSON (default) or FormatConsole.
	// The console encoder is meant for the converterctl CLI.
	//
	// This setting can be configured via:
	//   - Environment variable LOGGER_FORMAT
	Format string `yaml:"format" env:"FORMAT" envDefault:"json"`

	// CallerSkip is the number of wrapper frames between the reported caller
	// and the logger. Use 1 when calling the logger directly, add one per
	// wrapper layer. Values <= 0 mean 1.
	//
	// This setting can be configured via:
	//   - Environment variable LOGGER_CALLER_SKIP
	CallerSkip int `yaml:"caller_skip" env:"CALLER_SKIP" envDefault:"1"`
}
