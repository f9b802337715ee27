package metrics

// Defaults applied by NewMetrics to empty fields.
const (
	DefaultAddress   = ":9091"
	DefaultNamespace = "convert_lab"
)

// DefaultDurationBuckets suits in-process conversions, which mostly finish
// in microseconds.
var DefaultDurationBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// Config defines the configuration of the metrics endpoint.
type Config struct {
	// Address is the listen address of the /metrics HTTP server. An empty
	// value disables the server; Handler can still be mounted elsewhere.
	//
	// This setting can be configured via:
	//   - Environment variable METRICS_ADDRESS
	Address string `yaml:"address" env:"ADDRESS" envDefault:":9091"`

	// Namespace prefixes every metric name. Defaults to DefaultNamespace.
	//
	// This setting can be configured via:
	//   - Environment variable METRICS_NAMESPACE
	Namespace string `yaml:"namespace" env:"NAMESPACE" envDefault:"convert_lab"`

	// ServiceName is attached to every metric as the "service" label.
	//
	// This setting can be configured via:
	//   - Environment variable METRICS_SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// IncludeSystem adds the Go runtime, process and build info collectors.
	//
	// This setting can be configured via:
	//   - Environment variable METRICS_INCLUDE_SYSTEM
	IncludeSystem bool `yaml:"include_system" env:"INCLUDE_SYSTEM" envDefault:"true"`

	// DurationBuckets are the histogram buckets of operation durations, in
	// seconds. Defaults to DefaultDurationBuckets.
	//
	// This setting can be configured via:
	//   - Environment variable METRICS_DURATION_BUCKETS (comma separated)
	DurationBuckets []float64 `yaml:"duration_buckets" env:"DURATION_BUCKETS" envSeparator:","`
}
