package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/pkg/auth"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Authenticate requires a valid bearer token and loads the caller's identity
// into the request context.
func Authenticate(jwtCfg config.JWTConfig, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				responses.Error(r.Context(), w, log, errors.New(errors.CodeUnauthorized, "missing bearer token"))
				return
			}

			claims, err := auth.ParseAccessToken(jwtCfg, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				responses.Error(r.Context(), w, log, errors.Wrap(errors.CodeUnauthorized, err, "invalid access token"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, userRoleKey, claims.Role)
			ctx = log.WithUserID(ctx, claims.UserID.String())
			ctx = log.WithActorRole(ctx, claims.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to callers holding one of the given roles. It
// must run after Authenticate.
func RequireRole(log *logger.Logger, roles ...enums.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[enums.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowed[UserRoleFrom(r.Context())]; !ok {
				responses.Error(r.Context(), w, log, errors.New(errors.CodeForbidden, "insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
