package context

import "context"

type idempotencyKeyCtx struct{}

// WithIdempotencyKey attaches a caller-supplied idempotency key to ctx.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// GetIdempotencyKey returns the caller-supplied idempotency key or empty string.
func GetIdempotencyKey(ctx context.Context) string {
	if key, ok := ctx.Value(idempotencyKeyCtx{}).(string); ok {
		return key
	}
	return ""
}
