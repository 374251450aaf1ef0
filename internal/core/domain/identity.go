package domain

import (
	"context"
	"time"
)

// Identity is the decoded claim of a valid token, bound to a single request.
type Identity struct {
	Subject   string
	UserID    int64
	Email     string
	Roles     RoleSet
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Authorize reports whether role is a member of the identity's roles. A nil
// identity is never authorized.
func Authorize(id *Identity, role string) bool {
	if id == nil {
		return false
	}
	return id.Roles.Has(role)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity bound to ctx, if any.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
