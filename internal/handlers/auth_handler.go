package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/auth/middleware"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register validates the credentials, creates a user and returns it together with an access token.
	//
	// If the username is already taken, services.ErrUsernameTaken is returned.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error)
	// Method Login checks the credentials and returns the user together with an access token.
	//
	// If the user does not exist or the password does not match, services.ErrWrongCredentials is returned.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	// Method GetUser retrieves the user by ID.
	GetUser(ctx context.Context, userID int) (*models.User, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService  AuthService
	tokenExpiry  time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService AuthService,
	logger *zap.Logger,
	tokenExpiry time.Duration,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  BaseHandler{logger: logger},
		authService:  authService,
		tokenExpiry:  tokenExpiry,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.With(authMiddleware).Get("/user", h.GetUser)
}

// Register handles POST /api/register
// @Summary Register a new user
// @Description Create an account and log it in. The access token is returned as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register request"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or username already taken"
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to register user", zap.String("username", req.Username))
		return
	}

	h.setTokenCookie(w, token)
	h.respondJSON(w, http.StatusCreated, user.Public())
}

// Login handles POST /api/login
// @Summary Login user
// @Description Authenticate with username and password. The access token is returned as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to login user", zap.String("username", req.Username))
		return
	}

	h.setTokenCookie(w, token)
	h.respondJSON(w, http.StatusOK, user.Public())
}

// Logout handles POST /api/logout
// @Summary Logout user
// @Description Clear the access token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	h.respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// GetUser handles GET /api/user
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user [get]
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to get user", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, user.Public())
}

// setTokenCookie sets the access token as an HTTP-only cookie living as long as the token
func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
