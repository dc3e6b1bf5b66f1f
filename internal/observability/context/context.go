package context

import (
	"context"
	"strings"
)

type requestIDKey struct{}
type userIDKey struct{}

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, strings.TrimSpace(requestID))
}

// RequestIDFromContext returns the request id, or empty when unset.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(requestIDKey{}).(string); ok {
		return value
	}
	return ""
}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, strings.TrimSpace(userID))
}

// UserIDFromContext returns the authenticated user id, or empty when unset.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(userIDKey{}).(string); ok {
		return value
	}
	return ""
}
