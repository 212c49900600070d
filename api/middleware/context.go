package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	userRoleKey  contextKey = "user_role"
)

// RequestIDFrom returns the request id attached by the RequestID middleware.
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// UserIDFrom returns the authenticated user's id, or uuid.Nil when the
// request is anonymous.
func UserIDFrom(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// UserRoleFrom returns the authenticated user's role, or the empty role for
// anonymous requests.
func UserRoleFrom(ctx context.Context) enums.UserRole {
	if role, ok := ctx.Value(userRoleKey).(enums.UserRole); ok {
		return role
	}
	return ""
}
