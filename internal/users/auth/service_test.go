package auth_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabletoplib/bglist/internal/platform/apperr"
	"github.com/tabletoplib/bglist/internal/platform/sec"
	"github.com/tabletoplib/bglist/internal/users/auth"
)

type fakeRepository struct {
	createdUser *auth.User
	createErr   error

	userByEmail map[string]*auth.User
	getErr      error
}

func (f *fakeRepository) Create(_ context.Context, user *auth.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdUser = user
	return nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*auth.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.userByEmail[email]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return user, nil
}

func newService(t *testing.T, repo *fakeRepository) *auth.Service {
	t.Helper()
	tokens, err := sec.NewTokenService("test-signing-key-for-unit-tests", "bglist.test")
	require.NoError(t, err)
	return auth.NewService(repo, tokens, slog.New(slog.DiscardHandler))
}

/*
TestService_Register creates a member account with a hashed password.
*/
func TestService_Register(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(t, repo)

	user, err := service.Register(context.Background(), auth.RegisterRequest{
		Username: "meeple",
		Email:    "meeple@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.NotEqual(t, uuid0(), user.ID.String())
	require.NotNil(t, repo.createdUser)
	assert.NotEqual(t, "correct horse battery", repo.createdUser.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", repo.createdUser.PasswordHash))
}

func uuid0() string { return "00000000-0000-0000-0000-000000000000" }

/*
TestService_Register_Validation rejects malformed input with field errors.
*/
func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  auth.RegisterRequest
	}{
		{"empty_username", auth.RegisterRequest{Email: "a@b.com", Password: "longenough"}},
		{"bad_email", auth.RegisterRequest{Username: "meeple", Email: "nope", Password: "longenough"}},
		{"short_password", auth.RegisterRequest{Username: "meeple", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(t, &fakeRepository{})

			_, err := service.Register(context.Background(), tt.req)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestService_Register_PersistenceFailure hides storage errors, duplicate
accounts included, behind a generic internal error.
*/
func TestService_Register_PersistenceFailure(t *testing.T) {
	repo := &fakeRepository{createErr: apperr.Conflict("duplicate")}
	service := newService(t, repo)

	_, err := service.Register(context.Background(), auth.RegisterRequest{
		Username: "meeple",
		Email:    "meeple@example.com",
		Password: "longenough",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
}

func registeredUser(t *testing.T) *auth.User {
	t.Helper()
	hash, err := sec.HashPassword("longenough")
	require.NoError(t, err)
	return &auth.User{
		Username:     "meeple",
		Email:        "meeple@example.com",
		PasswordHash: hash,
		Role:         sec.RoleModerator,
	}
}

/*
TestService_Login issues a verifiable token carrying the account's role.
*/
func TestService_Login(t *testing.T) {
	user := registeredUser(t)
	repo := &fakeRepository{userByEmail: map[string]*auth.User{user.Email: user}}
	service := newService(t, repo)

	result, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    user.Email,
		Password: "longenough",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	tokens, err := sec.NewTokenService("test-signing-key-for-unit-tests", "bglist.test")
	require.NoError(t, err)
	claims, err := tokens.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "meeple", claims.Username)
	assert.Equal(t, string(sec.RoleModerator), claims.Role)
}

/*
TestService_Login_GenericFailure returns the same 401 for every failure
mode so accounts cannot be enumerated.
*/
func TestService_Login_GenericFailure(t *testing.T) {
	user := registeredUser(t)
	repo := &fakeRepository{userByEmail: map[string]*auth.User{user.Email: user}}

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"unknown_email", auth.LoginRequest{Email: "ghost@example.com", Password: "longenough"}},
		{"wrong_password", auth.LoginRequest{Email: user.Email, Password: "wrong"}},
		{"empty_credentials", auth.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(t, repo)

			_, err := service.Login(context.Background(), tt.req)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 401, ae.HTTPStatus)
			assert.Equal(t, "Invalid login attempt", ae.Detail)
		})
	}
}
