package ports

import "context"

// Span is a single traced operation.
type Span interface {
	// SetAttribute attaches a string attribute to the span.
	SetAttribute(key, value string)

	// RecordError marks the span as failed.
	RecordError(err error)

	// End completes the span.
	End()
}

// Tracer creates spans around resolution steps.
type Tracer interface {
	// Start begins a new span as a child of the span carried by ctx, if any.
	Start(ctx context.Context, name string) (context.Context, Span)
}
