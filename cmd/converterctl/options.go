package main

import (
	"errors"
	"flag"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/aalemi-dev/convert-lab/converter"
)

// types are the names accepted by -from and -to.
var types = map[string]reflect.Type{
	"string":   converter.TypeOf[string](),
	"int64":    converter.TypeOf[int64](),
	"float64":  converter.TypeOf[float64](),
	"bool":     converter.TypeOf[bool](),
	"duration": converter.TypeOf[time.Duration](),
	"time":     converter.TypeOf[time.Time](),
}

func typeNames() string {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

type options struct {
	From         string
	To           string
	Layout       string
	Locale       string
	TraceParent  string
	List         bool
	ServeMetrics bool
	Verbose      bool
	Value        string
}

func parseOptions(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.StringVar(&opts.From, "from", "string", "type the value is read as first ("+typeNames()+")")
	fs.StringVar(&opts.To, "to", "", "target type ("+typeNames()+")")
	fs.StringVar(&opts.Layout, "layout", "", "time layout, RFC 3339 when empty")
	fs.StringVar(&opts.Locale, "locale", "", "language of error messages, e.g. de or es-MX")
	fs.StringVar(&opts.TraceParent, "traceparent", "", "W3C traceparent to continue")
	fs.BoolVar(&opts.List, "list", false, "list the registered converters and exit")
	fs.BoolVar(&opts.ServeMetrics, "serve-metrics", false, "serve METRICS_ADDRESS while running")
	fs.BoolVar(&opts.Verbose, "verbose", false, "log fx lifecycle events")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.List {
		return opts, nil
	}
	if fs.NArg() != 1 {
		return options{}, errors.New("exactly one value is required")
	}
	opts.Value = fs.Arg(0)

	if _, ok := types[opts.From]; !ok {
		return options{}, fmt.Errorf("unknown -from type %q, want one of %s", opts.From, typeNames())
	}
	if _, ok := types[opts.To]; !ok {
		return options{}, fmt.Errorf("unknown -to type %q, want one of %s", opts.To, typeNames())
	}
	return opts, nil
}

// args returns the extra converter arguments for a conversion between from
// and to. Only time conversions take one, the layout.
func (o options) args(from, to reflect.Type) []any {
	timeType := types["time"]
	if from == timeType || to == timeType {
		return []any{o.Layout}
	}
	return nil
}
