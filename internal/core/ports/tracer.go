package ports

import "context"

// Span is a finished-by-caller trace region.
type Span interface {
	// SetAttr attaches a key/value attribute to the span.
	SetAttr(key, value string)
	// RecordError marks the span as failed.
	RecordError(err error)
	// End finishes the span.
	End()
}

// Tracer starts spans around request handling and cache builds. The serve
// path installs an OTel-backed tracer; everywhere else a noop is used.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
