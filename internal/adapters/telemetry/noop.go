package telemetry

import (
	"context"

	"github.com/monday-consulting/modres/internal/core/ports"
)

// NoOpTracer is a ports.Tracer that records nothing.
type NoOpTracer struct{}

// NewNoOpTracer creates a tracer that discards all spans.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &noOpSpan{}
}

type noOpSpan struct{}

func (s *noOpSpan) SetAttribute(_, _ string) {}
func (s *noOpSpan) RecordError(_ error)      {}
func (s *noOpSpan) End()                     {}
