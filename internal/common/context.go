package common

import "context"

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// CorrelationHeader carries the request correlation ID between the portal and the backend.
const CorrelationHeader = "X-Correlation-ID"

// WithCorrelationID stores a request correlation ID on ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation ID stored on ctx, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}
