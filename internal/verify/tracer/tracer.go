// Package tracer defines the minimal tracing surface the verification flow
// needs, keeping OpenTelemetry behind an adapter.
package tracer

import "context"

// Attribute is a key/value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String builds a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int builds an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Span represents one traced operation.
type Span interface {
	// End completes the span, recording err when non-nil.
	End(err error)

	// SetAttributes adds attributes to the span.
	SetAttributes(attrs ...Attribute)
}

// Tracer starts spans around verification stages.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Noop returns a tracer that records nothing. Used when tracing is not wired.
func Noop() Tracer { return noopTracer{} }

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error)                  {}
func (noopSpan) SetAttributes(...Attribute) {}
