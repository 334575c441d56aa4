package http

import (
	"context"

	"libris-backend/internal/domain"
)

type contextKey int

const (
	identityKey contextKey = iota
	requestIDKey
)

type identity struct {
	UserID int32
	Role   domain.Role
}

// WithIdentity stores the authenticated caller on the context.
func WithIdentity(ctx context.Context, userID int32, role domain.Role) context.Context {
	return context.WithValue(ctx, identityKey, identity{UserID: userID, Role: role})
}

// IdentityFromContext extracts the authenticated caller. The auth middleware
// guarantees it is present on protected routes.
func IdentityFromContext(ctx context.Context) (int32, domain.Role, bool) {
	id, ok := ctx.Value(identityKey).(identity)
	if !ok {
		return 0, "", false
	}
	return id.UserID, id.Role, true
}

// WithRequestID stores the per-request id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the per-request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
