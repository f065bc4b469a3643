// Package middleware authenticates requests and guards admin routes
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/learnlife319/app/internal/auth/service"
	"go.uber.org/zap"
)

type contextKey string

const userIDKey contextKey = "userID"

// AccessTokenCookie is the name of the cookie carrying the access token
const AccessTokenCookie = "access_token"

// UserChecker reports whether the user a token was issued to is still stored
type UserChecker interface {
	Exists(ctx context.Context, userID int) (bool, error)
}

// AuthMiddleware validates JWT access token and extracts userID.
// Tokens of users that are no longer stored are rejected.
func AuthMiddleware(tokenGenerator *service.TokenGenerator, users UserChecker, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			exists, err := users.Exists(r.Context(), userID)
			if err != nil {
				logger.Error("failed to look up token user", zap.Int("userID", userID), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !exists {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the token from the Authorization header, falling back to the cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	cookie, err := r.Cookie(AccessTokenCookie)
	if err == nil {
		return cookie.Value
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

// WithUserID returns a copy of ctx carrying the authenticated user id
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}
