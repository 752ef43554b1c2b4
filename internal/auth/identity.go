// Package auth carries the caller identity established by the bearer
// token middleware through the request context.
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// ErrNoIdentity is returned when the context carries no authenticated
// caller.
var ErrNoIdentity = errors.New("auth: no identity in context")

// Identity is the authenticated caller: token subject and role.
type Identity struct {
	UserID uuid.UUID
	Role   domain.Role
}

// IsOwnerRole reports whether the caller holds the owner role.
func (i Identity) IsOwnerRole() bool {
	return i.Role == domain.RoleOwner
}

type ctxKey struct{}

var identityKey ctxKey

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext extracts the caller identity set by the middleware.
func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
