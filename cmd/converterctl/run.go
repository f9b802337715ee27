package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/aalemi-dev/convert-lab/builtin"
	"github.com/aalemi-dev/convert-lab/config"
	"github.com/aalemi-dev/convert-lab/converter"
	"github.com/aalemi-dev/convert-lab/discovery"
	"github.com/aalemi-dev/convert-lab/logger"
	"github.com/aalemi-dev/convert-lab/messages"
	"github.com/aalemi-dev/convert-lab/metrics"
	"github.com/aalemi-dev/convert-lab/tracer"
)

// deps are the services a run needs from the container.
type deps struct {
	fx.In

	Converter converter.Converter
	Renderer  *messages.Renderer
	Tracer    tracer.Tracer
	Logger    logger.Logger
}

// newApp assembles the application. Extra options are appended last so
// tests can replace providers.
func newApp(opts options, d *deps, extra ...fx.Option) *fx.App {
	fxLogger := fx.NopLogger
	if opts.Verbose {
		fxLogger = fx.WithLogger(func(l *logger.LoggerClient) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap}
		})
	}

	modules := []fx.Option{
		config.FXModule,
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		discovery.FXModule,
		messages.FXModule,
		converter.FXModule,
		converter.AsCandidate(builtin.NewText(time.UTC)),
		converter.AsCandidate(builtin.Encoding{}),
		fx.Decorate(func(cfg metrics.Config) metrics.Config {
			if !opts.ServeMetrics {
				cfg.Address = ""
			}
			return cfg
		}),
		fx.Populate(d),
		fxLogger,
	}
	return fx.New(append(modules, extra...)...)
}

// run starts the application, performs the requested conversion and stops
// it again. It returns the process exit code.
func run(ctx context.Context, opts options, out, errOut io.Writer, extra ...fx.Option) int {
	var d deps
	app := newApp(opts, &d, extra...)
	if err := app.Err(); err != nil {
		fmt.Fprintf(errOut, "converterctl: %v\n", err)
		return 1
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(errOut, "converterctl: start: %v\n", err)
		return 1
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			fmt.Fprintf(errOut, "converterctl: stop: %v\n", err)
		}
	}()

	if opts.List {
		list(out, d.Converter.Entries())
		return 0
	}

	result, err := convert(ctx, opts, d)
	if err != nil {
		d.Logger.ErrorWithContext(ctx, "conversion failed", err, map[string]interface{}{
			"value": opts.Value,
			"from":  opts.From,
			"to":    opts.To,
		})
		fmt.Fprintln(errOut, d.Renderer.Render(err, opts.Locale))
		return 1
	}

	fmt.Fprintln(out, result)
	return 0
}

// convert reads the value as -from, then converts it to -to, both inside a
// span continuing -traceparent when given.
func convert(ctx context.Context, opts options, d deps) (any, error) {
	if opts.TraceParent != "" {
		ctx = d.Tracer.SetCarrierOnContext(ctx, map[string]string{"traceparent": opts.TraceParent})
	}
	ctx, span := d.Tracer.StartSpan(ctx, "converterctl.convert")
	defer span.End()
	span.SetAttributes(map[string]interface{}{
		"converterctl.from": opts.From,
		"converterctl.to":   opts.To,
	})

	from, to := types[opts.From], types[opts.To]
	stringType := types["string"]

	var value any = opts.Value
	if from != stringType {
		read, err := d.Converter.ConvertContext(ctx, opts.Value, from, opts.args(stringType, from)...)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		value = read
	}

	result, err := d.Converter.ConvertContext(ctx, value, to, opts.args(from, to)...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return result, nil
}

func list(out io.Writer, entries []converter.EntryInfo) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tTARGET\tOWNER\tNAME\tEXTRA")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", e.Source, e.Target, e.Owner, e.Name, e.ExtraParams)
	}
	_ = w.Flush()
}
