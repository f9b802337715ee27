package discovery

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/convert-lab/converter"
)

// FXModule provides a MethodScanner as the converter.Discoverer used by
// converter.FXModule. Without this module the registry falls back to
// converter.ProviderDiscoverer.
//
// Usage:
//
//	app := fx.New(
//	    config.FXModule,
//	    discovery.FXModule,
//	    converter.FXModule,
//	)
var FXModule = fx.Module("discovery",
	fx.Provide(
		NewMethodScanner, // Provides *MethodScanner
		fx.Annotate(
			func(s *MethodScanner) converter.Discoverer { return s },
			fx.As(new(converter.Discoverer)),
		),
	),
)
