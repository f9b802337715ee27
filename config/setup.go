package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Load reads Config from the environment.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	log, err := logger.NewLoggerClient(cfg.Logger)
func Load() (Config, error) {
	return LoadWithPrefix("")
}

// LoadWithPrefix reads Config from variables carrying an extra prefix, so
// that CONVERT_LAB_LOGGER_LEVEL is read with prefix "CONVERT_LAB_".
func LoadWithPrefix(prefix string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyServiceName()
	return cfg, nil
}
