package converter

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Convert converts source to target. It is ConvertContext with a background
// context.
func (r *Registry) Convert(source any, target reflect.Type, args ...any) (any, error) {
	return r.ConvertContext(context.Background(), source, target, args...)
}

// ConvertContext converts source to target, forwarding args to the converter
// after the source argument.
//
// Edge cases:
//   - a nil target fails with KindNullTarget;
//   - a nil source (untyped, or a typed nil pointer, map, slice…) yields
//     (nil, nil) without any lookup;
//   - a source whose dynamic type already is target is returned unchanged.
//
// Otherwise the converter is resolved (see CanConvertValue) and called.
// Argument count and types are checked first (KindTooFewArguments,
// KindTooManyArguments, KindArgumentTypeMismatch). A conversion-time *Error
// returned by the converter is passed through untouched; any other error, or
// a panic, is wrapped as KindConversionFailed with the original as cause.
func (r *Registry) ConvertContext(ctx context.Context, source any, target reflect.Type, args ...any) (any, error) {
	if target == nil {
		err := &Error{Kind: KindNullTarget}
		r.observeConversion(nil, nil, nil, 0, err)
		return nil, err
	}
	if isNil(source) {
		return nil, nil
	}

	sourceType := reflect.TypeOf(source)
	if sourceType == target {
		return source, nil
	}

	start := time.Now()
	ctx, span := r.startSpan(ctx, sourceType, target)
	defer span.End()

	e, in, ok := r.resolve(reflect.ValueOf(source), target)
	if !ok {
		err := &Error{Kind: KindNoConverterFound, Source: sourceType, Target: target}
		r.finishSpan(span, nil, err)
		r.observeConversion(sourceType, target, nil, time.Since(start), err)
		r.logDebug(ctx, "no converter found", map[string]interface{}{
			"source": typeName(sourceType),
			"target": typeName(target),
		})
		return nil, err
	}

	result, err := e.call(in, sourceType, target, args)
	r.finishSpan(span, e, err)
	r.observeConversion(sourceType, target, e, time.Since(start), err)

	fields := map[string]interface{}{
		"source": typeName(sourceType),
		"target": typeName(target),
		"owner":  typeName(e.owner),
		"method": e.name,
	}
	switch {
	case err == nil:
		if r.cfg.LogConversions {
			r.logDebug(ctx, "conversion completed", fields)
		}
	case KindOf(err) == KindConversionFailed:
		r.logWarn(ctx, "conversion failed", err, fields)
	default:
		r.logDebug(ctx, "conversion rejected", fields)
	}

	return result, err
}

// To converts source to T through c. A nil result yields the zero T.
//
//	n, err := converter.To[int64](registry, "20")
func To[T any](c Converter, source any, args ...any) (T, error) {
	var zero T
	out, err := c.Convert(source, TypeOf[T](), args...)
	if err != nil || out == nil {
		return zero, err
	}
	v, ok := out.(T)
	if !ok {
		return zero, &Error{
			Kind:   KindConversionFailed,
			Source: reflect.TypeOf(source),
			Target: TypeOf[T](),
			Err:    fmt.Errorf("converter returned %T", out),
		}
	}
	return v, nil
}

// call checks args against the declared extra parameters and invokes the
// converter with source prepended.
func (e *entry) call(source reflect.Value, sourceType, target reflect.Type, args []any) (result any, err error) {
	switch {
	case len(args) < len(e.params):
		return nil, e.failure(KindTooFewArguments, sourceType, target, nil)
	case len(args) > len(e.params):
		return nil, e.failure(KindTooManyArguments, sourceType, target, nil)
	}

	in := make([]reflect.Value, 0, 1+len(args))
	in = append(in, source)
	for i, arg := range args {
		param := e.params[i]
		if arg == nil {
			if !nilable(param) {
				return nil, e.failure(KindArgumentTypeMismatch, sourceType, target,
					fmt.Errorf("argument %d: nil is not a valid %s", i+1, param))
			}
			in = append(in, reflect.Zero(param))
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(param) {
			return nil, e.failure(KindArgumentTypeMismatch, sourceType, target,
				fmt.Errorf("argument %d: %s is not assignable to %s", i+1, av.Type(), param))
		}
		in = append(in, av)
	}

	defer func() {
		if p := recover(); p != nil {
			var cause error
			if perr, ok := p.(error); ok {
				cause = fmt.Errorf("converter panicked: %w", perr)
			} else {
				cause = fmt.Errorf("converter panicked: %v", p)
			}
			result, err = nil, e.failure(KindConversionFailed, sourceType, target, cause)
		}
	}()

	out := e.fn.Call(in)
	if e.returnsError && !out[1].IsNil() {
		cause, _ := out[1].Interface().(error)
		var classified *Error
		if errors.As(cause, &classified) && classified.Kind.ConversionTime() {
			return nil, cause
		}
		return nil, e.failure(KindConversionFailed, sourceType, target, cause)
	}
	return out[0].Interface(), nil
}

func (e *entry) failure(kind Kind, source, target reflect.Type, cause error) *Error {
	return &Error{
		Kind:   kind,
		Source: source,
		Target: target,
		Owner:  e.owner,
		Method: e.name,
		Err:    cause,
	}
}

func (r *Registry) startSpan(ctx context.Context, source, target reflect.Type) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !r.cfg.EnableTracing {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return r.tracer.Start(ctx, "converter.Convert", trace.WithAttributes(
		attribute.String("converter.source", typeName(source)),
		attribute.String("converter.target", typeName(target)),
	))
}

func (r *Registry) finishSpan(span trace.Span, e *entry, err error) {
	if e != nil {
		span.SetAttributes(
			attribute.String("converter.owner", typeName(e.owner)),
			attribute.String("converter.method", e.name),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, KindOf(err).Code())
	}
}
