package converter

import (
	"context"
	"reflect"
	"time"

	"github.com/aalemi-dev/convert-lab/observability"
)

// WithObserver sets the observer notified after every register, convert and
// clear operation, and returns the registry for chaining.
//
// Example:
//
//	registry := converter.NewRegistry(cfg).
//	    WithObserver(promObserver).
//	    WithLogger(appLogger)
func (r *Registry) WithObserver(observer observability.Observer) *Registry {
	r.observer = observer
	return r
}

// WithLogger sets the logger and returns the registry for chaining.
func (r *Registry) WithLogger(logger Logger) *Registry {
	r.logger = logger
	return r
}

// observeOperation notifies the observer about an operation if one is configured.
//
// Parameters:
//   - operation: "register", "convert" or "clear"
//   - resource: the owner type for registrations, the source type for conversions
//   - subResource: the target type for conversions
//   - size: converters added or removed
func (r *Registry) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if r == nil || r.observer == nil {
		return
	}

	r.observer.ObserveOperation(observability.OperationContext{
		Component:   "converter",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

func (r *Registry) observeRegistration(owner string, added int, duration time.Duration, err error) {
	r.observeOperation("register", owner, "", duration, err, int64(added), map[string]interface{}{
		"kind":  outcome(err),
		"owner": owner,
	})
}

func (r *Registry) observeConversion(source, target reflect.Type, e *entry, duration time.Duration, err error) {
	metadata := map[string]interface{}{
		"kind": outcome(err),
	}
	if e != nil {
		metadata["owner"] = typeName(e.owner)
		metadata["method"] = e.name
	}
	r.observeOperation("convert", typeName(source), typeName(target), duration, err, 0, metadata)
}

// outcome is the short label observers use to bucket results.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return KindOf(err).String()
}

func (r *Registry) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.DebugWithContext(ctx, msg, nil, fields)
	}
}

func (r *Registry) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

func (r *Registry) logWarn(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.WarnWithContext(ctx, msg, err, fields)
	}
}

func (r *Registry) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.ErrorWithContext(ctx, msg, err, fields)
	}
}
