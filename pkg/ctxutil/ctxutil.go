// Package ctxutil carries request-scoped values through context.Context.
package ctxutil

import (
	"context"
	"log/slog"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestIDAttr returns the request ID as a log attribute.
func RequestIDAttr(ctx context.Context) slog.Attr {
	return slog.String("request_id", RequestIDFromCtx(ctx))
}
