package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName — имя трейсера для спанов сервиса.
const InstrumentationName = "github.com/Gunvolt24/trickbook"

const defaultEndpoint = "localhost:4318"

// Options — параметры экспорта трейсов.
type Options struct {
	ServiceName string
	Endpoint    string  // host:port OTLP/HTTP коллектора
	SampleRatio float64 // доля корневых трейсов [0..1]
}

func (o Options) normalized() Options {
	if o.ServiceName == "" {
		o.ServiceName = "trickbook"
	}
	if o.Endpoint == "" {
		o.Endpoint = defaultEndpoint
	}
	switch {
	case o.SampleRatio < 0:
		o.SampleRatio = 0
	case o.SampleRatio > 1:
		o.SampleRatio = 1
	}
	return o
}

// SetupTracing — OTLP/HTTP экспорт без TLS, семплинг с учётом родителя,
// глобальные провайдер и пропагаторы. Возвращает Shutdown провайдера.
func SetupTracing(ctx context.Context, opts Options) (func(context.Context) error, error) {
	opts = opts.normalized()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(opts.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		// входящий traceparent решает сам; TraceIDRatioBased только для корней
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
			attribute.String("telemetry.sdk", "opentelemetry"),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return provider.Shutdown, nil
}

// StartSpan — дочерний спан от глобального провайдера.
// Без SetupTracing провайдер no-op, и вызов ничего не стоит.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(InstrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}
