package logging

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// traceIDKey is the context key for the per-invocation trace ID.
type traceIDKey struct{}

// EnvTraceID lets a caller pin the trace ID of a CLI invocation.
const EnvTraceID = "CARBONROUTE_TRACE_ID"

// NewTraceID returns a fresh, lexically sortable trace ID.
func NewTraceID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace ID already in ctx, or a new one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}
