package auth

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/auth"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	created []*models.User
	err     error
}

func (s *stubUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	if s.byEmail == nil {
		s.byEmail = map[string]*models.User{}
	}
	s.byEmail[user.Email] = user
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

var (
	testJWTConfig      = config.JWTConfig{Secret: "test-secret", Issuer: "autoshift-test", ExpirationMinutes: 15}
	testPasswordConfig = config.PasswordConfig{ArgonMemoryKB: 8192, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 16, ArgonKeyLen: 32}
)

func newTestService(repo *stubUserRepo) Service {
	log := logger.New(logger.Options{ServiceName: "auth-test", Level: zerolog.Disabled, Output: io.Discard})
	return NewService(repo, testJWTConfig, testPasswordConfig, log)
}

func TestSignUpCreatesWorkerByDefault(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newTestService(repo)

	session, err := svc.SignUp(context.Background(), SignUpInput{
		Email:     "Dana@Example.com",
		Password:  "correct horse battery",
		FirstName: "Dana",
		LastName:  "Reyes",
	})

	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", session.Email)
	assert.Equal(t, enums.UserRoleWorker, session.Role)
	assert.NotEmpty(t, session.Token)

	require.Len(t, repo.created, 1)
	assert.NotEqual(t, "correct horse battery", repo.created[0].PasswordHash)

	claims, err := auth.ParseAccessToken(testJWTConfig, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, claims.UserID)
	assert.Equal(t, enums.UserRoleWorker, claims.Role)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newTestService(repo)

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "dana@example.com", Password: "pw-one-two-three", FirstName: "Dana", LastName: "Reyes"})
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), SignUpInput{Email: "dana@example.com", Password: "another-pw", FirstName: "Other", LastName: "Person"})
	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeConflict, typed.Code())
}

func TestSignUpRejectsUnknownRole(t *testing.T) {
	svc := newTestService(&stubUserRepo{})

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "dana@example.com",
		Password: "pw-one-two-three",
		Role:     enums.UserRole("superuser"),
	})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
}

func TestSignInVerifiesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newTestService(repo)

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "dana@example.com", Password: "pw-one-two-three", FirstName: "Dana", LastName: "Reyes"})
	require.NoError(t, err)

	session, err := svc.SignIn(context.Background(), SignInInput{Email: "dana@example.com", Password: "pw-one-two-three"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	_, err = svc.SignIn(context.Background(), SignInInput{Email: "dana@example.com", Password: "wrong"})
	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeUnauthorized, typed.Code())
}

func TestSignInUnknownAccountIsUnauthorized(t *testing.T) {
	svc := newTestService(&stubUserRepo{})

	_, err := svc.SignIn(context.Background(), SignInInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeUnauthorized, typed.Code())
}
