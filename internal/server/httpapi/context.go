// Package httpapi exposes the portfolio server over HTTP: route wiring,
// the access-gate and role-policy middleware, and the JSON envelope the
// API speaks.
package httpapi

import (
	"context"

	"github.com/Sadia492/portfolio-server/internal/server/models"
)

// Identity is the request-scoped result of a validated session token. It
// exists only for the duration of one request and is never persisted.
type Identity struct {
	UserID string
	Email  string
	Role   models.Role
}

type ctxKey string

const identityKey ctxKey = "identity"

func withIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the resolved identity attached by the access gate.
// The second return value is false when no gate ran for this request.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}
