package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for account settings
type UserService interface {
	UpdateTelegramChannel(ctx context.Context, userID int, req *models.UpdateTelegramChannelRequest) error
	MakeAdmin(ctx context.Context, userID int) error
}

// UserHandler handles account settings and user administration
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers routes available to every authenticated user
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users/telegram-channel", h.UpdateTelegramChannel)
}

// RegisterAdminRoutes registers routes that require the admin flag
func (h *UserHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/admin/users/{userId}/make-admin", h.MakeAdmin)
}

// UpdateTelegramChannel handles POST /api/users/telegram-channel
// @Summary Set Telegram channel
// @Description Store the Telegram channel passages are shared to
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.UpdateTelegramChannelRequest true "Channel"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/telegram-channel [post]
func (h *UserHandler) UpdateTelegramChannel(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.UpdateTelegramChannelRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.userService.UpdateTelegramChannel(r.Context(), userID, &req); err != nil {
		h.respondServiceError(w, err, "failed to update telegram channel", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// MakeAdmin handles POST /api/admin/users/{userId}/make-admin
// @Summary Grant admin rights
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{userId}/make-admin [post]
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	targetID, ok := h.pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.userService.MakeAdmin(r.Context(), targetID); err != nil {
		h.respondServiceError(w, err, "failed to grant admin", zap.Int("targetUserID", targetID))
		return
	}

	h.respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}
