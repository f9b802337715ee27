package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// propagator carries W3C trace context and baggage across process
// boundaries, e.g. converterctl's --traceparent flag.
var propagator = propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

// TracerClient owns the OpenTelemetry tracer provider of the process. The
// converter registry takes its spans from Provider(); application code can
// use StartSpan directly.
//
// TracerClient implements the Tracer interface and is safe for concurrent use.
type TracerClient struct {
	provider *sdktrace.TracerProvider
}

// NewClient creates the tracer provider and installs it, together with the
// propagator, as the OpenTelemetry globals.
//
// Extra provider options are appended after the ones derived from cfg; tests
// use them to attach a span recorder.
//
// Example:
//
//	tc, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "converterctl",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	    SampleRatio:  0.1,
//	})
//	if err != nil {
//	    return err
//	}
//	defer tc.Shutdown(context.Background())
//
//	registry := converter.NewRegistry(converter.Config{EnableTracing: true}).
//	    WithTracer(tc.Provider().Tracer(converter.DefaultTracerName))
func NewClient(cfg Config, opts ...sdktrace.TracerProviderOption) (*TracerClient, error) {
	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	options = append(options,
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(cfg.SampleRatio)))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.AppEnv),
			attribute.String("environment", cfg.AppEnv),
		)),
	)
	options = append(options, opts...)

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagator)

	return &TracerClient{provider: tp}, nil
}

// Provider returns the tracer provider.
func (t *TracerClient) Provider() trace.TracerProvider {
	return t.provider
}

// ForceFlush exports all ended spans that have not been exported yet.
func (t *TracerClient) ForceFlush(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.ForceFlush(ctx)
}

// Shutdown flushes pending spans and stops the provider.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

// clampRatio maps unset or out-of-range ratios to 1.
func clampRatio(r float64) float64 {
	if r <= 0 || r > 1 {
		return 1
	}
	return r
}
