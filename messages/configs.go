package messages

// Config defines the configuration of a Renderer.
type Config struct {
	// DefaultLocale is used when the requested locale is empty, invalid or
	// not matched by any supported locale. It must be one of Supported().
	//
	// This setting can be configured via:
	//   - Environment variable MESSAGES_DEFAULT_LOCALE
	DefaultLocale string `yaml:"default_locale" env:"DEFAULT_LOCALE" envDefault:"en-US"`
}
