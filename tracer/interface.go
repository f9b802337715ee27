package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Tracer is the tracing contract of convert-lab. It is implemented by
// *TracerClient.
type Tracer interface {
	// Provider returns the OpenTelemetry provider, for libraries (such as the
	// converter registry) that create their own spans.
	Provider() trace.TracerProvider

	// StartSpan starts a span as a child of the span in ctx, if any. Call
	// End on the returned span when the operation completes.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier returns the trace context of ctx as W3C headers
	// (traceparent, tracestate, baggage).
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext continues the trace described by carrier.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span is a started span.
type Span interface {
	// End completes the span.
	End()

	// SetAttributes adds attributes. string, int, int64, float64 and bool
	// values keep their type; anything else is stored with fmt.Sprint.
	SetAttributes(attrs map[string]interface{})

	// RecordError records err and marks the span as failed.
	RecordError(err error)
}
