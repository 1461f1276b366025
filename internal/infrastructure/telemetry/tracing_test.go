package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordSpans swaps in a recording tracer provider for the duration of the
// test so span helpers can be asserted against what they actually emit.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func endedAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestStartSpan(t *testing.T) {
	t.Run("names span service.method", func(t *testing.T) {
		sr := recordSpans(t)

		_, span := telemetry.StartSpan(context.Background(), "invoice", "print")
		span.End()

		ended := sr.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, "invoice.print", ended[0].Name())
		assert.Equal(t, telemetry.TracerName, ended[0].InstrumentationScope().Name)
	})

	t.Run("carries start attributes", func(t *testing.T) {
		sr := recordSpans(t)
		id := uuid.New()

		_, span := telemetry.StartSpan(context.Background(), "voucher", "print",
			telemetry.SpanDocumentID.String(id.String()))
		span.End()

		attrs := endedAttrs(sr.Ended()[0])
		assert.Equal(t, id.String(), attrs[telemetry.SpanDocumentID].AsString())
	})

	t.Run("child continues parent trace", func(t *testing.T) {
		sr := recordSpans(t)

		ctx, parent := telemetry.StartSpan(context.Background(), "invoice", "print")
		_, child := telemetry.StartSpan(ctx, "invoice", "render")
		child.End()
		parent.End()

		ended := sr.Ended()
		require.Len(t, ended, 2)
		assert.Equal(t, ended[1].SpanContext().TraceID(), ended[0].SpanContext().TraceID())
		assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
	})
}

func TestRecordError(t *testing.T) {
	t.Run("sets error status and event", func(t *testing.T) {
		sr := recordSpans(t)

		_, span := telemetry.StartSpan(context.Background(), "invoice", "print")
		telemetry.RecordError(span, errors.New("upstream returned 502"))
		span.End()

		ended := sr.Ended()[0]
		assert.Equal(t, codes.Error, ended.Status().Code)
		assert.Equal(t, "upstream returned 502", ended.Status().Description)

		require.Len(t, ended.Events(), 1)
		assert.Equal(t, "exception", ended.Events()[0].Name)
	})

	t.Run("nil error leaves span untouched", func(t *testing.T) {
		sr := recordSpans(t)

		_, span := telemetry.StartSpan(context.Background(), "invoice", "print")
		telemetry.RecordError(span, nil)
		span.End()

		ended := sr.Ended()[0]
		assert.Equal(t, codes.Unset, ended.Status().Code)
		assert.Empty(t, ended.Events())
	})

	t.Run("nil span does not panic", func(t *testing.T) {
		telemetry.RecordError(nil, errors.New("boom"))
	})
}

func TestAddEvent(t *testing.T) {
	t.Run("annotates span in context", func(t *testing.T) {
		sr := recordSpans(t)

		ctx, span := telemetry.StartSpan(context.Background(), "voucher", "print")
		telemetry.AddEvent(ctx, "document_stored",
			telemetry.SpanStorageKey.String("vouchers/2026/08/JV-0042.pdf"),
			telemetry.SpanSizeBytes.Int64(18432),
		)
		span.End()

		events := sr.Ended()[0].Events()
		require.Len(t, events, 1)
		assert.Equal(t, "document_stored", events[0].Name)

		byKey := make(map[attribute.Key]attribute.Value)
		for _, kv := range events[0].Attributes {
			byKey[kv.Key] = kv.Value
		}
		assert.Equal(t, "vouchers/2026/08/JV-0042.pdf", byKey[telemetry.SpanStorageKey].AsString())
		assert.Equal(t, int64(18432), byKey[telemetry.SpanSizeBytes].AsInt64())
	})

	t.Run("context without span is a no-op", func(t *testing.T) {
		telemetry.AddEvent(context.Background(), "dropped")
	})
}

func TestSpanAttributeKeys(t *testing.T) {
	assert.Equal(t, "document_id", string(telemetry.SpanDocumentID))
	assert.Equal(t, "document_number", string(telemetry.SpanDocumentNumber))
	assert.Equal(t, "storage_key", string(telemetry.SpanStorageKey))
	assert.Equal(t, "size_bytes", string(telemetry.SpanSizeBytes))
}
