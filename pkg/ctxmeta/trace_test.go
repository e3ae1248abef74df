package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/trickbook/pkg/ctxmeta"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestTraceAndSpanIDs_FromSpan(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "content.fetch")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok || traceID != span.SpanContext().TraceID().String() {
		t.Fatalf("trace id: got %q ok=%v", traceID, ok)
	}
	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok || spanID != span.SpanContext().SpanID().String() {
		t.Fatalf("span id: got %q ok=%v", spanID, ok)
	}
}

func TestTraceAndSpanIDs_NoSpan(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	if id, ok := ctxmeta.TraceIDFromContext(ctx); ok || id != "" {
		t.Fatalf("TraceIDFromContext => %q,%v; want \"\", false", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(ctx); ok || id != "" {
		t.Fatalf("SpanIDFromContext => %q,%v; want \"\", false", id, ok)
	}
}
