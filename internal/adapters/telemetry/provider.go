// Package telemetry implements the tracing adapter using OpenTelemetry.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/monday-consulting/modres/internal/core/ports"
)

// InstrumentationName identifies this module's tracer.
const InstrumentationName = "github.com/monday-consulting/modres"

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a new OTelTracer using the globally registered
// tracer provider.
func NewOTelTracer() *OTelTracer {
	return &OTelTracer{
		tracer: otel.Tracer(InstrumentationName),
	}
}

// NewTracerWithProvider creates an OTelTracer bound to the given provider
// instead of the global one. Used for testing with isolated providers.
func NewTracerWithProvider(tp trace.TracerProvider) *OTelTracer {
	return &OTelTracer{
		tracer: tp.Tracer(InstrumentationName),
	}
}

// Start creates a new span as a child of the span carried by ctx, if any.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OTelSpan{span: span}
}

// Setup configures the OpenTelemetry SDK with a bridge that reports span
// lifecycle to the logger. It registers the provider globally and returns a
// shutdown function that flushes pending spans.
func Setup(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// SetAttribute attaches a string attribute to the span.
func (s *OTelSpan) SetAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// RecordError records an error and marks the span as failed.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}
