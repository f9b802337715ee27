package converter

import (
	"context"
	"reflect"
	"sort"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/aalemi-dev/convert-lab/logger"
	"github.com/aalemi-dev/convert-lab/observability"
)

// CandidateGroup is the fx value group the module collects candidates from.
const CandidateGroup = "converters"

// FXModule provides the converter registry to an fx application.
//
// The module provides:
// 1. *Registry (concrete type) for direct use
// 2. Converter interface for dependency injection
// 3. Lifecycle hooks logging the registry size and clearing it on stop
//
// Every value in the "converters" group is registered at construction time;
// a registration failure aborts application startup. The group is
// registered in order of candidate type name so startup is reproducible.
//
// Usage:
//
//	app := fx.New(
//	    config.FXModule,
//	    logger.FXModule,
//	    converter.FXModule,
//	    converter.AsCandidate(&builtin.Text{}),
//	    fx.Invoke(func(c converter.Converter) {
//	        n, err := converter.To[int64](c, "42")
//	        ...
//	    }),
//	)
var FXModule = fx.Module("converter",
	fx.Provide(
		NewRegistryWithDI, // Provides *Registry
		fx.Annotate(
			func(r *Registry) Converter { return r },
			fx.As(new(Converter)),
		),
	),
	fx.Invoke(RegisterConverterLifecycle),
)

// AsCandidate adds candidate to the "converters" group.
//
// Candidates needing dependencies can be provided with a constructor
// returning any instead:
//
//	fx.Provide(fx.Annotate(
//	    func(loc *time.Location) any { return builtin.NewText(loc) },
//	    fx.ResultTags(`group:"converters"`),
//	))
func AsCandidate(candidate any) fx.Option {
	return fx.Provide(fx.Annotated{
		Group:  CandidateGroup,
		Target: func() any { return candidate },
	})
}

// Params groups the dependencies of NewRegistryWithDI.
type Params struct {
	fx.In

	Config         Config
	Logger         logger.Logger          `optional:"true"`
	Observer       observability.Observer `optional:"true"`
	TracerProvider trace.TracerProvider   `optional:"true"`
	Discoverer     Discoverer             `optional:"true"`
	Candidates     []any                  `group:"converters"`
}

// NewRegistryWithDI builds a registry from the fx container and registers
// the "converters" group with SetConverters.
//
// Returns the concrete *Registry, or the first registration error.
func NewRegistryWithDI(params Params) (*Registry, error) {
	registry := NewRegistry(params.Config)

	if params.Logger != nil {
		registry.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		registry.WithObserver(params.Observer)
	}
	if params.TracerProvider != nil {
		registry.WithTracer(params.TracerProvider.Tracer(registry.cfg.TracerName))
	}
	if params.Discoverer != nil {
		registry.WithDiscoverer(params.Discoverer)
	}

	candidates := make([]any, 0, len(params.Candidates))
	for _, c := range params.Candidates {
		if c != nil {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return reflect.TypeOf(candidates[i]).String() < reflect.TypeOf(candidates[j]).String()
	})

	if err := registry.SetConverters(candidates...); err != nil {
		return nil, err
	}
	return registry, nil
}

// LifecycleParams groups the dependencies of RegisterConverterLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  *Registry
}

// RegisterConverterLifecycle logs the registry size on start and clears the
// registry on stop.
func RegisterConverterLifecycle(params LifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Registry.logInfo(ctx, "converter registry ready", map[string]interface{}{
				"converters": params.Registry.Len(),
				"service":    params.Registry.cfg.ServiceName,
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Registry.Clear()
			params.Registry.logInfo(ctx, "converter registry cleared", nil)
			return nil
		},
	})
}
