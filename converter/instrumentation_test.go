package converter_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/convert-lab/converter"
	"github.com/aalemi-dev/convert-lab/logger"
	"github.com/aalemi-dev/convert-lab/observability"
)

type recordingObserver struct {
	mu  sync.Mutex
	ops []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(op observability.OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *recordingObserver) byOperation(name string) []observability.OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []observability.OperationContext
	for _, op := range r.ops {
		if op.Operation == name {
			out = append(out, op)
		}
	}
	return out
}

func TestObserver_Register(t *testing.T) {
	rec := &recordingObserver{}
	r := converter.NewRegistry(converter.Config{}).WithObserver(rec)

	require.NoError(t, r.Register(Numbers{}))
	requireKind(t, r.Register(OtherNumbers{}), converter.KindConflictingConverter)
	requireKind(t, r.Register(nil), converter.KindCandidateRequired)

	ops := rec.byOperation("register")
	require.Len(t, ops, 3)

	assert.Equal(t, "converter", ops[0].Component)
	assert.Equal(t, "converter_test.Numbers", ops[0].Resource)
	assert.Equal(t, int64(2), ops[0].Size)
	assert.Equal(t, "ok", ops[0].Outcome())
	assert.NoError(t, ops[0].Error)

	assert.Equal(t, "converter_test.OtherNumbers", ops[1].Resource)
	assert.Equal(t, "converter.conflicting_converter", ops[1].Outcome())
	assert.Error(t, ops[1].Error)

	assert.Equal(t, "", ops[2].Resource)
	assert.Equal(t, "converter.candidate_required", ops[2].Outcome())
}

func TestObserver_Convert(t *testing.T) {
	rec := &recordingObserver{}
	r := newRegistry(t, Numbers{})
	r.WithObserver(rec)

	_, _ = r.Convert("7", int64Type)
	_, _ = r.Convert("seven", int64Type)
	_, _ = r.Convert(1.5, stringType)
	_, _ = r.Convert("7", nil)

	// Short-circuits are not conversions.
	_, _ = r.Convert(nil, stringType)
	_, _ = r.Convert("7", stringType)

	ops := rec.byOperation("convert")
	require.Len(t, ops, 4)

	assert.Equal(t, "string", ops[0].Resource)
	assert.Equal(t, "int64", ops[0].SubResource)
	assert.Equal(t, "ok", ops[0].Outcome())
	assert.Equal(t, "converter_test.Numbers", ops[0].Metadata["owner"])
	assert.Equal(t, "ParseInt64", ops[0].Metadata["method"])

	assert.Equal(t, "converter.conversion_failed", ops[1].Outcome())
	assert.Equal(t, "converter.no_converter_found", ops[2].Outcome())
	assert.NotContains(t, ops[2].Metadata, "owner")
	assert.Equal(t, "converter.null_target", ops[3].Outcome())
}

func TestObserver_Clear(t *testing.T) {
	rec := &recordingObserver{}
	r := newRegistry(t, Numbers{}, Flags{})
	r.WithObserver(rec)

	r.Clear()

	ops := rec.byOperation("clear")
	require.Len(t, ops, 1)
	assert.Equal(t, int64(3), ops[0].Size)
	assert.Equal(t, "ok", ops[0].Outcome())
}

func TestObserver_Multi(t *testing.T) {
	first, second := &recordingObserver{}, &recordingObserver{}
	r := converter.NewRegistry(converter.Config{}).
		WithObserver(observability.Multi(first, nil, second))

	require.NoError(t, r.Register(Numbers{}))

	assert.Len(t, first.byOperation("register"), 1)
	assert.Len(t, second.byOperation("register"), 1)
}

func newObservedLogger(level zapcore.Level) (*logger.LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.NewFromZap(zap.New(core), true), logs
}

func TestLogging(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)
	r := converter.NewRegistry(converter.Config{ServiceName: "test"}).WithLogger(log)

	require.NoError(t, r.Register(Numbers{}))
	registered := logs.FilterMessage("converter registered").All()
	require.Len(t, registered, 1)
	assert.Equal(t, zapcore.InfoLevel, registered[0].Level)
	assert.Equal(t, "converter_test.Numbers", registered[0].ContextMap()["owner"])

	requireKind(t, r.Register(Numbers{}), converter.KindDuplicateRegistration)
	failed := logs.FilterMessage("converter registration failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Contains(t, failed[0].ContextMap()["error"], "already registered")

	_, err := r.Convert("x", int64Type)
	require.Error(t, err)
	warned := logs.FilterMessage("conversion failed").All()
	require.Len(t, warned, 1)
	assert.Equal(t, zapcore.WarnLevel, warned[0].Level)
	assert.Equal(t, "ParseInt64", warned[0].ContextMap()["method"])

	_, err = r.Convert(true, int64Type)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("no converter found").Len())

	_, err = r.Convert("1", int64Type)
	require.NoError(t, err)
	assert.Equal(t, 0, logs.FilterMessage("conversion completed").Len())
}

func TestLogging_Conversions(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)
	r := converter.NewRegistry(converter.Config{LogConversions: true}).WithLogger(log)
	require.NoError(t, r.Register(Flags{}))

	_, err := r.Convert(5, stringType, false)
	require.NoError(t, err)

	completed := logs.FilterMessage("conversion completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, zapcore.DebugLevel, completed[0].Level)
	assert.Equal(t, "int", completed[0].ContextMap()["source"])

	_, err = r.Convert(5, stringType)
	requireKind(t, err, converter.KindTooFewArguments)
	assert.Equal(t, 1, logs.FilterMessage("conversion rejected").Len())
}

func newTracedRegistry(t *testing.T, cfg converter.Config) (*converter.Registry, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := converter.NewRegistry(cfg).WithTracer(tp.Tracer("converter-test"))
	require.NoError(t, r.Register(Numbers{}))
	return r, sr
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) string {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value.AsString()
		}
	}
	return ""
}

func TestTracing(t *testing.T) {
	r, sr := newTracedRegistry(t, converter.Config{EnableTracing: true})

	_, err := r.ConvertContext(context.Background(), "12", int64Type)
	require.NoError(t, err)
	_, err = r.ConvertContext(context.Background(), "twelve", int64Type)
	require.Error(t, err)
	_, err = r.ConvertContext(context.Background(), 1.5, int64Type)
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 3)

	ok := spans[0]
	assert.Equal(t, "converter.Convert", ok.Name())
	assert.Equal(t, "string", spanAttr(ok, "converter.source"))
	assert.Equal(t, "int64", spanAttr(ok, "converter.target"))
	assert.Equal(t, "converter_test.Numbers", spanAttr(ok, "converter.owner"))
	assert.Equal(t, "ParseInt64", spanAttr(ok, "converter.method"))
	assert.Equal(t, codes.Unset, ok.Status().Code)

	failed := spans[1]
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Equal(t, "converter.conversion_failed", failed.Status().Description)
	require.NotEmpty(t, failed.Events())
	assert.Equal(t, "exception", failed.Events()[0].Name)

	missing := spans[2]
	assert.Equal(t, "converter.no_converter_found", missing.Status().Description)
	assert.Equal(t, "", spanAttr(missing, "converter.owner"))
}

func TestTracing_ChildOfCallerSpan(t *testing.T) {
	r, sr := newTracedRegistry(t, converter.Config{EnableTracing: true})

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, parent := tp.Tracer("caller").Start(context.Background(), "request")
	defer parent.End()

	_, err := r.ConvertContext(ctx, "3", int64Type)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, parent.SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestTracing_Disabled(t *testing.T) {
	r, sr := newTracedRegistry(t, converter.Config{EnableTracing: false})

	_, err := r.ConvertContext(context.Background(), "12", int64Type)
	require.NoError(t, err)
	assert.Empty(t, sr.Ended())
}

func TestTracing_ShortCircuitsOpenNoSpan(t *testing.T) {
	r, sr := newTracedRegistry(t, converter.Config{EnableTracing: true})

	_, _ = r.ConvertContext(context.Background(), nil, int64Type)
	_, _ = r.ConvertContext(context.Background(), "same", stringType)
	_, _ = r.ConvertContext(context.Background(), "x", nil)
	assert.Empty(t, sr.Ended())
}
