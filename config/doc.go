// Package config loads convert-lab configuration from the environment with
// github.com/caarlos0/env.
//
// Every package keeps its own Config type with env tags relative to its
// section; this package nests them under a prefix per package:
//
//	SERVICE_NAME=billing              # default service name of every section
//	LOGGER_LEVEL=debug
//	TRACER_ENABLE_EXPORT=true
//	METRICS_ADDRESS=:9091
//	CONVERTER_LOG_CONVERSIONS=true
//	DISCOVERY_PREFIX=To
//	MESSAGES_DEFAULT_LOCALE=de-DE
//
// Load returns the aggregate; FXModule also provides every section so that
// logger.FXModule, converter.FXModule and the rest find their Config.
package config
