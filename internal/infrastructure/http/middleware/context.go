package middleware

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity injects the authenticated caller into the context.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext returns the caller set by the auth middleware. ok is
// false when the request never passed authentication.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	v := ctx.Value(identityContextKey)
	if v == nil {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
