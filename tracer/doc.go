// Package tracer sets up OpenTelemetry tracing for convert-lab.
//
// NewClient builds the SDK tracer provider (optionally exporting over OTLP
// HTTP) and installs it as the global provider. The converter registry gets
// its spans from Provider(); application code can use the simplified
// StartSpan/Span API and the W3C carrier helpers.
//
// # Direct Usage
//
//	tc, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "converterctl",
//		AppEnv:       "development",
//		EnableExport: false,
//	})
//	if err != nil {
//		return err
//	}
//	defer tc.Shutdown(context.Background())
//
//	ctx, span := tc.StartSpan(ctx, "import-batch")
//	defer span.End()
//	span.SetAttributes(map[string]interface{}{"rows": 120})
//
// # Continuing a Trace
//
//	ctx = tc.SetCarrierOnContext(ctx, map[string]string{
//		"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		config.FXModule,
//		tracer.FXModule,    // *TracerClient, Tracer, trace.TracerProvider
//		converter.FXModule, // uses the provider when present
//	)
//
// # Configuration
//
//	TRACER_SERVICE_NAME=billing
//	TRACER_APP_ENV=production
//	TRACER_ENABLE_EXPORT=true     # exporter endpoint from OTEL_EXPORTER_OTLP_*
//	TRACER_SAMPLE_RATIO=0.25
package tracer
