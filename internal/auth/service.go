package auth

import (
	"context"
	stdErrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/auth"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/security"
)

// Service handles account creation and credential exchange.
type Service interface {
	SignUp(ctx context.Context, input SignUpInput) (*Session, error)
	SignIn(ctx context.Context, input SignInInput) (*Session, error)
}

type SignUpInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber *string
	Role        enums.UserRole
}

type SignInInput struct {
	Email    string
	Password string
}

// Session is a freshly minted access token plus the account it belongs to.
type Session struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      enums.UserRole
}

type userRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type service struct {
	users    userRepo
	jwt      config.JWTConfig
	password config.PasswordConfig
	log      *logger.Logger
	now      func() time.Time
}

func NewService(users userRepo, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig, log *logger.Logger) Service {
	return &service{
		users:    users,
		jwt:      jwtCfg,
		password: passwordCfg,
		log:      log,
		now:      time.Now,
	}
}

func (s *service) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	role := input.Role
	if role == "" {
		role = enums.UserRoleWorker
	}
	if !role.IsValid() {
		return nil, errors.New(errors.CodeValidation, "invalid user role")
	}

	if existing, err := s.users.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.New(errors.CodeConflict, "email already registered")
	} else if err != nil && !stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(errors.CodeInternal, err, "checking existing account")
	}

	hash, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return nil, errors.Wrap(errors.CodeValidation, err, "hashing password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "creating account")
	}

	s.log.Info(s.log.WithUserID(ctx, user.ID.String()), "account created")
	return s.mintSession(user)
}

func (s *service) SignIn(ctx context.Context, input SignInInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeUnauthorized, "invalid credentials")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "loading account")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, errors.New(errors.CodeUnauthorized, "invalid credentials")
	}

	return s.mintSession(user)
}

func (s *service) mintSession(user *models.User) (*Session, error) {
	token, err := auth.MintAccessToken(s.jwt, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "minting access token")
	}
	return &Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}, nil
}
