package discovery

// DefaultPrefix is the method-name prefix MethodScanner selects when a
// candidate does not list its converters.
const DefaultPrefix = "Convert"

// Config defines how MethodScanner selects converter methods.
type Config struct {
	// Prefix selects exported methods by name, e.g. "Convert" matches
	// ConvertToString and ConvertFromUnix. Defaults to DefaultPrefix.
	//
	// This setting can be configured via:
	//   - Environment variable DISCOVERY_PREFIX
	Prefix string `yaml:"prefix" env:"PREFIX" envDefault:"Convert"`
}
