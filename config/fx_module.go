package config

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/convert-lab/converter"
	"github.com/aalemi-dev/convert-lab/discovery"
	"github.com/aalemi-dev/convert-lab/logger"
	"github.com/aalemi-dev/convert-lab/messages"
	"github.com/aalemi-dev/convert-lab/metrics"
	"github.com/aalemi-dev/convert-lab/tracer"
)

// FXModule loads Config from the environment and provides each section to
// the modules that need it.
//
// Usage:
//
//	app := fx.New(
//	    config.FXModule,
//	    logger.FXModule,
//	    converter.FXModule,
//	)
//
// Applications that build Config themselves can skip FXModule and use
// fx.Supply(cfg) together with fx.Provide(config.Sections).
var FXModule = fx.Module("config",
	fx.Provide(
		Load,
		Sections,
	),
)

// Out carries the per-package sections of Config into the container.
type Out struct {
	fx.Out

	Logger    logger.Config
	Tracer    tracer.Config
	Metrics   metrics.Config
	Converter converter.Config
	Discovery discovery.Config
	Messages  messages.Config
}

// Sections splits cfg into its per-package sections.
func Sections(cfg Config) Out {
	return Out{
		Logger:    cfg.Logger,
		Tracer:    cfg.Tracer,
		Metrics:   cfg.Metrics,
		Converter: cfg.Converter,
		Discovery: cfg.Discovery,
		Messages:  cfg.Messages,
	}
}
