package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans started by application services.
const TracerName = "misoft"

// Attribute keys for service-level spans. Middleware spans use the OTel
// semantic conventions; these cover the business details layered on top.
var (
	SpanDocumentID     = attribute.Key("document_id")
	SpanDocumentNumber = attribute.Key("document_number")
	SpanStorageKey     = attribute.Key("storage_key")
	SpanSizeBytes      = attribute.Key("size_bytes")
)

// StartSpan opens an internal span named {service}.{method}, for example
// "invoice.print". The caller must End the returned span.
func StartSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
	}
	if len(attrs) > 0 {
		opts = append(opts, trace.WithAttributes(attrs...))
	}
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, service+"."+method, opts...)
}

// RecordError records err on the span and flips its status to error. Safe
// to call with a nil span or nil error.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// AddEvent attaches a timestamped event to the span carried by ctx. A
// context without a recording span makes this a no-op.
func AddEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).AddEvent(name, trace.WithAttributes(attrs...))
}
