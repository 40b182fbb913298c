package token

import "context"

type contextKey struct{}

// WithIdentity returns a context carrying the verified identity. The
// middleware calls this exactly once per admitted request.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFromContext returns the verified identity attached by the
// middleware. The second return value is false when the request was not
// admitted through it.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(Identity)
	return identity, ok
}
