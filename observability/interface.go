package observability

import "time"

// Observer receives one event per completed operation of an instrumented
// package. It lets metrics, tracing or audit code watch the converter
// registry without the registry depending on any of them.
//
// Observers are optional: every package works without one.
type Observer interface {
	// ObserveOperation is called synchronously after the operation
	// completes. Implementations must be safe for concurrent use and should
	// return quickly.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a completed operation.
type OperationContext struct {
	// Component is the emitting package, e.g. "converter".
	Component string

	// Operation is what was done.
	// The converter registry emits "register", "convert" and "clear".
	Operation string

	// Resource is the primary subject: the candidate type for "register",
	// the source type for "convert".
	Resource string

	// SubResource is the secondary subject: the target type for "convert".
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the operation's error, nil on success.
	Error error

	// Size is the number of items involved: converters added by
	// "register", converters removed by "clear".
	Size int64

	// Metadata carries component-specific detail. The converter registry
	// sets "kind" (the error kind code, or "ok") and "owner" (the converter
	// owner type) where they apply.
	Metadata map[string]interface{}
}

// Outcome returns Metadata["kind"] when it is a non-empty string, otherwise
// "ok" or "error" depending on Error.
func (c OperationContext) Outcome() string {
	if kind, ok := c.Metadata["kind"].(string); ok && kind != "" {
		return kind
	}
	if c.Error != nil {
		return "error"
	}
	return "ok"
}
