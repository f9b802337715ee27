package config

import (
	"github.com/aalemi-dev/convert-lab/converter"
	"github.com/aalemi-dev/convert-lab/discovery"
	"github.com/aalemi-dev/convert-lab/logger"
	"github.com/aalemi-dev/convert-lab/messages"
	"github.com/aalemi-dev/convert-lab/metrics"
	"github.com/aalemi-dev/convert-lab/tracer"
)

// DefaultServiceName is used when SERVICE_NAME is unset.
const DefaultServiceName = "convert-lab"

// Config aggregates the configuration of every convert-lab package. Each
// section reads the variables of its package under its own prefix, e.g.
// LOGGER_LEVEL or CONVERTER_LOG_CONVERSIONS.
type Config struct {
	// ServiceName is copied into every section that has an empty
	// service name of its own.
	//
	// This setting can be configured via:
	//   - Environment variable SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME" envDefault:"convert-lab"`

	Logger    logger.Config    `yaml:"logger" envPrefix:"LOGGER_"`
	Tracer    tracer.Config    `yaml:"tracer" envPrefix:"TRACER_"`
	Metrics   metrics.Config   `yaml:"metrics" envPrefix:"METRICS_"`
	Converter converter.Config `yaml:"converter" envPrefix:"CONVERTER_"`
	Discovery discovery.Config `yaml:"discovery" envPrefix:"DISCOVERY_"`
	Messages  messages.Config  `yaml:"messages" envPrefix:"MESSAGES_"`
}

// applyServiceName fills the empty per-section service names.
func (c *Config) applyServiceName() {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	for _, name := range []*string{
		&c.Logger.ServiceName,
		&c.Tracer.ServiceName,
		&c.Metrics.ServiceName,
		&c.Converter.ServiceName,
	} {
		if *name == "" {
			*name = c.ServiceName
		}
	}
}
