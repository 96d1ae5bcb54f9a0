package events

import (
	"context"

	"mocms/pkg/middleware"
)

type correlationKey struct{}

// WithCorrelationID attaches id to ctx so that published events carry it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// correlationID prefers an explicit ID and falls back to the HTTP request ID.
func correlationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok && id != "" {
		return id
	}
	return middleware.RequestIDFrom(ctx)
}
