package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// AdminChecker reports whether the stored user has the admin flag
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int) (bool, error)
}

// AdminMiddleware allows the request only if the authenticated user is an admin.
// It must be chained after AuthMiddleware. The flag is read from storage on every request.
func AdminMiddleware(checker AdminChecker, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), userID)
			if err != nil {
				logger.Error("failed to check admin flag", zap.Int("userID", userID), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if !isAdmin {
				writeError(w, http.StatusForbidden, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
