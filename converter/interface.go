package converter

import (
	"context"
	"reflect"
)

// Converter is the registry contract. It is implemented by *Registry.
//
// Consumers should depend on this interface and let the fx module (or
// NewRegistry) supply the concrete type.
type Converter interface {
	// Register validates and stores every converter the candidate exposes.
	// Entries stored before a failing descriptor stay registered.
	Register(candidate any) error

	// SetConverters clears the registry and registers each candidate in
	// order, stopping at the first failure. Candidates registered before the
	// failing one stay registered.
	SetConverters(candidates ...any) error

	// Clear removes every registered converter.
	Clear()

	// CanConvert reports whether a converter is registered for exactly
	// (source, target).
	CanConvert(source, target reflect.Type) bool

	// CanConvertValue reports whether Convert would find a converter for
	// value, trying its exact type, its interfaces and its parent.
	CanConvertValue(value any, target reflect.Type) bool

	// Convert converts source to target, forwarding args to the converter.
	Convert(source any, target reflect.Type, args ...any) (any, error)

	// ConvertContext is Convert with a context used for tracing and logging.
	ConvertContext(ctx context.Context, source any, target reflect.Type, args ...any) (any, error)

	// Entries returns a sorted snapshot of the registered converters.
	Entries() []EntryInfo
}

// Logger is the subset of logger.Logger the registry writes to.
type Logger interface {
	// DebugWithContext logs a debug-level message with trace context.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// InfoWithContext logs an informational message with trace context.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
