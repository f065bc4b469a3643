package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// PassageService is the interface that wraps methods for reading passages business logic.
type PassageService interface {
	// Method Create creates a passage owned by "userID".
	//
	// If "folderId" is set it must reference a visible passage folder.
	Create(ctx context.Context, userID int, req *models.CreatePassageRequest) (*models.Passage, error)
	// Method List returns passages owned by "userID" together with every public passage.
	List(ctx context.Context, userID int) ([]models.Passage, error)
	// Method ListByFolder returns passages of the folder visible to "userID".
	ListByFolder(ctx context.Context, userID, folderID int) ([]models.Passage, error)
	// Method UpdateReactions replaces the whole reaction map of a passage.
	//
	// If the passage does not exist or is private to another user, a not found error is returned.
	UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) (*models.Passage, error)
	// Method Share posts the passage to the Telegram channel configured by "userID".
	Share(ctx context.Context, userID, id int) error
}

// PassageHandler handles HTTP requests for reading passages
type PassageHandler struct {
	BaseHandler
	service PassageService
}

// NewPassageHandler creates a new passage handler
func NewPassageHandler(svc PassageService, logger *zap.Logger) *PassageHandler {
	return &PassageHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all passage handler routes
func (h *PassageHandler) RegisterRoutes(r chi.Router) {
	r.Post("/passages", h.Create)
	r.Get("/passages", h.List)
	r.Get("/passages/{folderId}", h.ListByFolder)
	r.Post("/passages/{id}/reactions", h.UpdateReactions)
	r.Post("/passages/{id}/share", h.Share)
}

// Create handles POST /api/passages
// @Summary Create passage
// @Tags passages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreatePassageRequest true "Passage"
// @Success 201 {object} models.Passage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Folder not found"
// @Router /passages [post]
func (h *PassageHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreatePassageRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	passage, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create passage", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, passage)
}

// List handles GET /api/passages
// @Summary List passages
// @Tags passages
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Passage
// @Router /passages [get]
func (h *PassageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	passages, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list passages", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, passages)
}

// ListByFolder handles GET /api/passages/{folderId}
// @Summary List passages of a folder
// @Tags passages
// @Produce json
// @Security ApiKeyAuth
// @Param folderId path int true "Folder ID"
// @Success 200 {array} models.Passage
// @Failure 400 {object} ErrorResponse
// @Router /passages/{folderId} [get]
func (h *PassageHandler) ListByFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	folderID, ok := h.pathID(w, r, "folderId")
	if !ok {
		return
	}

	passages, err := h.service.ListByFolder(r.Context(), userID, folderID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list passages", zap.Int("folderID", folderID))
		return
	}

	h.respondJSON(w, http.StatusOK, passages)
}

// UpdateReactions handles POST /api/passages/{id}/reactions
// @Summary Replace passage reactions
// @Tags passages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Passage ID"
// @Param request body models.Reactions true "Reaction counts"
// @Success 200 {object} models.Passage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /passages/{id}/reactions [post]
func (h *PassageHandler) UpdateReactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var reactions models.Reactions
	if !h.decodeJSON(w, r, &reactions) {
		return
	}

	passage, err := h.service.UpdateReactions(r.Context(), userID, id, reactions)
	if err != nil {
		h.respondServiceError(w, err, "failed to update passage reactions", zap.Int("passageID", id))
		return
	}

	h.respondJSON(w, http.StatusOK, passage)
}

// Share handles POST /api/passages/{id}/share
// @Summary Share passage to Telegram
// @Tags passages
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Passage ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} ErrorResponse "No Telegram channel ID configured"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to share to Telegram"
// @Router /passages/{id}/share [post]
func (h *PassageHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Share(r.Context(), userID, id); err != nil {
		h.respondServiceError(w, err, "failed to share passage", zap.Int("passageID", id))
		return
	}

	h.respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}
