package ports

import "context"

// Span is one traced unit of work.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Span interface {
	// End completes the span.
	End()

	// RecordError attaches an error to the span.
	RecordError(err error)

	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}

// Tracer starts spans around optimization phases. Implementations must be
// safe for concurrent use; layer spans start from worker goroutines.
type Tracer interface {
	// Start begins a span and returns the context carrying it.
	Start(ctx context.Context, name string) (context.Context, Span)
}
