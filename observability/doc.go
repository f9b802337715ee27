// Package observability defines the Observer contract that instrumented
// convert-lab packages report their operations to.
//
// # Overview
//
// A package that performs interesting work (today: the converter registry)
// accepts an optional Observer and calls it once per completed operation
// with an OperationContext. Applications plug in metrics (see the metrics
// package), audit trails or anything else behind the same interface.
//
// # Events Emitted by the Converter Registry
//
//	OperationContext{
//	    Component: "converter",
//	    Operation: "register",
//	    Resource:  "*builtin.Text",
//	    Duration:  40 * time.Microsecond,
//	    Size:      10, // converters added
//	    Metadata:  map[string]interface{}{"kind": "ok", "owner": "*builtin.Text"},
//	}
//
//	OperationContext{
//	    Component:   "converter",
//	    Operation:   "convert",
//	    Resource:    "string",
//	    SubResource: "int64",
//	    Duration:    3 * time.Microsecond,
//	    Error:       err,
//	    Metadata:    map[string]interface{}{"kind": "converter.conversion_failed", "owner": "*builtin.Text"},
//	}
//
//	OperationContext{
//	    Component: "converter",
//	    Operation: "clear",
//	    Size:      10, // converters removed
//	}
//
// # Composition
//
// Multi fans one event out to several observers; ObserverFunc adapts a plain
// function:
//
//	registry.WithObserver(observability.Multi(
//	    promMetrics,
//	    observability.ObserverFunc(func(op observability.OperationContext) {
//	        if op.Error != nil {
//	            audit.Record(op.Component, op.Operation, op.Error)
//	        }
//	    }),
//	))
//
// # FX Integration
//
// Provide an implementation as observability.Observer and every fx module
// taking an optional observer picks it up:
//
//	fx.Provide(
//	    fx.Annotate(
//	        func(m *metrics.Metrics) observability.Observer { return m },
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// # Thread Safety
//
// Observers are called concurrently from every goroutine using the
// instrumented component and must be safe for concurrent use.
package observability
