package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/learnlife319/app/internal/auth/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// echoUserID writes the authenticated user id so tests can assert on it
func echoUserID(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte{byte('0' + userID)})
	})
}

type mockUserChecker struct {
	users map[int]bool
	err   error
}

func (m *mockUserChecker) Exists(ctx context.Context, userID int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.users[userID], nil
}

func TestAuthMiddleware(t *testing.T) {
	tg := service.NewTokenGenerator("secret", time.Hour)
	token, err := tg.GenerateAccessToken(7)
	require.NoError(t, err)
	unknownToken, err := tg.GenerateAccessToken(8)
	require.NoError(t, err)

	tests := []struct {
		name           string
		setupRequest   func(r *http.Request)
		checker        *mockUserChecker
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "bearer header",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "7",
		},
		{
			name: "cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "7",
		},
		{
			name:           "no token",
			setupRequest:   func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"authentication required"}`,
		},
		{
			name: "invalid token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer garbage")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid or expired token"}`,
		},
		{
			name: "valid token of unknown user",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+unknownToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid or expired token"}`,
		},
		{
			name: "user lookup fails",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			checker:        &mockUserChecker{err: errors.New("disk error")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			checker := tt.checker
			if checker == nil {
				checker = &mockUserChecker{users: map[int]bool{7: true}}
			}

			AuthMiddleware(tg, checker, zap.NewNop())(echoUserID(t)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

type mockAdminChecker struct {
	admins map[int]bool
	err    error
}

func (m *mockAdminChecker) IsAdmin(ctx context.Context, userID int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.admins[userID], nil
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		checker        *mockAdminChecker
		userID         int
		authenticated  bool
		expectedStatus int
	}{
		{
			name:           "admin passes",
			checker:        &mockAdminChecker{admins: map[int]bool{1: true}},
			userID:         1,
			authenticated:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "regular user is forbidden",
			checker:        &mockAdminChecker{admins: map[int]bool{1: true}},
			userID:         2,
			authenticated:  true,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unauthenticated",
			checker:        &mockAdminChecker{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "lookup failure",
			checker:        &mockAdminChecker{err: errors.New("disk error")},
			userID:         1,
			authenticated:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/users/3/make-admin", nil)
			if tt.authenticated {
				req = req.WithContext(WithUserID(req.Context(), tt.userID))
			}
			w := httptest.NewRecorder()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			AdminMiddleware(tt.checker, zap.NewNop())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
