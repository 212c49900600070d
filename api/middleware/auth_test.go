package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshift-labs/autoshift-backend/pkg/auth"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

var testJWTConfig = config.JWTConfig{Secret: "test-secret", Issuer: "autoshift-test", ExpirationMinutes: 5}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "middleware-test", Level: zerolog.Disabled, Output: io.Discard})
}

func identityEcho(t *testing.T, wantID uuid.UUID, wantRole enums.UserRole) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantID, UserIDFrom(r.Context()))
		assert.Equal(t, wantRole, UserRoleFrom(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler := Authenticate(testJWTConfig, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	handler := Authenticate(testJWTConfig, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateLoadsIdentityIntoContext(t *testing.T) {
	userID := uuid.New()
	token, err := auth.MintAccessToken(testJWTConfig, time.Now(), auth.AccessTokenPayload{UserID: userID, Role: enums.UserRoleAdmin})
	require.NoError(t, err)

	handler := Authenticate(testJWTConfig, testLogger())(identityEcho(t, userID, enums.UserRoleAdmin))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	userID := uuid.New()
	token, err := auth.MintAccessToken(testJWTConfig, time.Now(), auth.AccessTokenPayload{UserID: userID, Role: enums.UserRoleWorker})
	require.NoError(t, err)

	log := testLogger()
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})
	handler = RequireRole(log, enums.UserRoleAdmin)(handler)
	handler = Authenticate(testJWTConfig, log)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	handler := RequestID(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFrom(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDHonorsCallerValue(t *testing.T) {
	handler := RequestID(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caller-id", RequestIDFrom(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "caller-id", rec.Header().Get("X-Request-ID"))
}
