// Copyright (c) 2026 The BGList Authors. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabletoplib/bglist/internal/platform/ctxutil"
	"github.com/tabletoplib/bglist/internal/platform/middleware"
	"github.com/tabletoplib/bglist/internal/platform/sec"
)

type fakeVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (f *fakeVerifier) VerifyToken(_ string) (*sec.AuthClaims, error) {
	return f.claims, f.err
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		called = true
		writer.WriteHeader(http.StatusOK)
	}), &called
}

/*
TestAuthenticate lets anonymous requests through, attaches claims for valid
tokens, and rejects malformed or invalid credentials.
*/
func TestAuthenticate(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "u1", Username: "meeple", Role: string(sec.RoleMember)}

	tests := []struct {
		name       string
		header     string
		verifier   *fakeVerifier
		wantStatus int
		wantClaims bool
	}{
		{"anonymous_passthrough", "", &fakeVerifier{}, 200, false},
		{"valid_bearer", "Bearer sometoken", &fakeVerifier{claims: claims}, 200, true},
		{"case_insensitive_scheme", "bearer sometoken", &fakeVerifier{claims: claims}, 200, true},
		{"malformed_header", "Basic dXNlcg==", &fakeVerifier{claims: claims}, 401, false},
		{"missing_token", "Bearer", &fakeVerifier{claims: claims}, 401, false},
		{"invalid_token", "Bearer bad", &fakeVerifier{err: errors.New("expired")}, 401, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *sec.AuthClaims
			inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				gotClaims = ctxutil.GetAuthUser(request.Context())
				writer.WriteHeader(http.StatusOK)
			})

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("GET", "/api/v1/boardgames", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			middleware.Authenticate(tt.verifier)(inner).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantClaims, gotClaims != nil)
		})
	}
}

/*
TestRequireRole enforces the role hierarchy after authentication.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		userRole   string
		required   sec.UserRole
		wantStatus int
	}{
		{"member_blocked_from_moderation", string(sec.RoleMember), sec.RoleModerator, 403},
		{"moderator_allowed", string(sec.RoleModerator), sec.RoleModerator, 200},
		{"moderator_blocked_from_admin", string(sec.RoleModerator), sec.RoleAdministrator, 403},
		{"admin_exceeds_moderator", string(sec.RoleAdministrator), sec.RoleModerator, 200},
		{"unknown_role_blocked", "superuser", sec.RoleMember, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, called := okHandler()

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("POST", "/api/v1/boardgames", nil)
			ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u1", Role: tt.userRole})
			request = request.WithContext(ctx)

			middleware.RequireRole(tt.required)(inner).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantStatus == 200, *called)
		})
	}
}

/*
TestRequireRole_Anonymous rejects unauthenticated requests with 401, not 403.
*/
func TestRequireRole_Anonymous(t *testing.T) {
	inner, called := okHandler()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/api/v1/boardgames/1", nil)

	middleware.RequireRole(sec.RoleAdministrator)(inner).ServeHTTP(recorder, request)

	assert.Equal(t, 401, recorder.Code)
	assert.False(t, *called)
}
