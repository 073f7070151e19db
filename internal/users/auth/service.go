package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tabletoplib/bglist/internal/platform/apperr"
	"github.com/tabletoplib/bglist/internal/platform/constants"
	"github.com/tabletoplib/bglist/internal/platform/sec"
	"github.com/tabletoplib/bglist/internal/platform/validate"
)

type Service struct {
	repo   Repository
	tokens *sec.TokenService
	logger *slog.Logger
}

func NewService(repo Repository, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a member account with a bcrypt password hash.
//
// Persistence failures, duplicate identities included, surface as internal
// errors rather than conflicts; registration never confirms to a caller
// which usernames or emails exist.
func (service *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	v := &validate.Validator{}
	err := v.
		Required("username", req.Username).
		MaxLen("username", req.Username, 50).
		Required("email", req.Email).
		Email("email", req.Email).
		Required("password", req.Password).
		MinLen("password", req.Password, 8).
		Err()
	if err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now().UTC()
	user := &User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         sec.RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.repo.Create(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("account_registered", slog.String("username", user.Username))
	return user, nil
}

// Login verifies the credentials and issues a short-lived bearer token.
// Every failure mode returns the same generic 401 so the response does not
// reveal whether the email is registered.
func (service *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	invalid := apperr.Unauthorized("Invalid login attempt")

	if req.Email == "" || req.Password == "" {
		return nil, invalid
	}

	user, err := service.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, invalid
	}
	if !sec.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalid
	}

	token, err := service.tokens.GenerateAccessToken(
		user.ID.String(), user.Username, string(user.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("login_succeeded", slog.String("username", user.Username))
	return &LoginResult{Token: token}, nil
}
