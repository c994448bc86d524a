package auth

import (
	"context"

	"github.com/goshop/catalog-service/internal/apperr"
)

const (
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
	RoleUser   = "USER"
)

// Identity is the resolved caller. It is threaded explicitly through the
// workflows; there is no ambient current-user lookup.
type Identity struct {
	UserID string
	Role   string
}

// Authorize decides whether the caller holds the required role.
func Authorize(caller *Identity, requiredRole string) error {
	if caller == nil || caller.UserID == "" {
		return apperr.Unauthenticated("unauthenticated")
	}
	if caller.Role != requiredRole {
		return apperr.Unauthorized("unauthorized: " + requiredRole + " privileges required")
	}
	return nil
}

type ctxKey struct{}

// WithIdentity stores the caller identity on the request context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the caller identity, or nil when the request
// carried no valid credentials.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(ctxKey{}).(*Identity)
	return id
}
