package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/aalemi-dev/convert-lab/logger"
)

// FXModule provides distributed tracing to an fx application.
//
// The module provides:
// 1. *TracerClient (concrete type) for direct use
// 2. Tracer interface for dependency injection
// 3. trace.TracerProvider, picked up by converter.FXModule for conversion spans
// 4. A stop hook flushing and shutting down the provider
//
// A tracer.Config must be available in the container.
//
// Usage:
//
//	app := fx.New(
//	    config.FXModule,
//	    tracer.FXModule,
//	    converter.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(cfg Config) (*TracerClient, error) { return NewClient(cfg) }, // Provides *TracerClient
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
		func(t *TracerClient) trace.TracerProvider { return t.Provider() },
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// LifecycleParams groups the dependencies of RegisterTracerLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *TracerClient
	Logger    logger.Logger `optional:"true"`
}

// RegisterTracerLifecycle shuts the provider down when the application
// stops, flushing spans that are still buffered.
func RegisterTracerLifecycle(params LifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.InfoWithContext(ctx, "shutting down tracer", nil)
			}
			return params.Client.Shutdown(ctx)
		},
	})
}
