// Package logger provides zap-backed structured logging for convert-lab.
//
// The package follows "accept interfaces, return structs": NewLoggerClient
// returns *LoggerClient, consumers depend on Logger (or on the narrower
// converter.Logger, which *LoggerClient also satisfies).
//
// # Direct Usage
//
//	log, err := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "billing",
//	})
//	if err != nil {
//		return err
//	}
//
//	registry := converter.NewRegistry(converter.Config{}).WithLogger(log)
//
// # FX Module Integration
//
//	app := fx.New(
//		config.FXModule,  // logger.Config from LOGGER_* variables
//		logger.FXModule,  // *LoggerClient and logger.Logger
//		converter.FXModule,
//	)
//
// # Configuration
//
//	LOGGER_LEVEL=debug            # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true    # add trace_id/span_id from the active span
//	LOGGER_SERVICE_NAME=billing   # "service" field
//	LOGGER_FORMAT=console         # json (default) or console
//	LOGGER_CALLER_SKIP=1          # wrapper frames to skip
//
// # Tracing Integration
//
// With EnableTracing set, the *WithContext methods add the trace and span
// IDs of the recording span in ctx. The registry passes the context it
// opened its "converter.Convert" span on, so conversion failures can be
// correlated with their traces.
//
// All methods are safe for concurrent use.
package logger
