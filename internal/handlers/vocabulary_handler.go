package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// VocabularyService is the interface that wraps methods for vocabulary business logic
type VocabularyService interface {
	Create(ctx context.Context, userID int, req *models.CreateVocabularyRequest) (*models.Vocabulary, error)
	ListByFolder(ctx context.Context, userID, folderID int) ([]models.Vocabulary, error)
	UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) (*models.Vocabulary, error)
}

// VocabularyHandler handles HTTP requests for vocabulary items
type VocabularyHandler struct {
	BaseHandler
	service VocabularyService
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(svc VocabularyService, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all vocabulary handler routes
func (h *VocabularyHandler) RegisterRoutes(r chi.Router) {
	r.Post("/vocabulary", h.Create)
	r.Get("/vocabulary/{folderId}", h.ListByFolder)
	r.Post("/vocabulary/{id}/reactions", h.UpdateReactions)
}

// Create handles POST /api/vocabulary
// @Summary Create vocabulary item
// @Tags vocabulary
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateVocabularyRequest true "Vocabulary item"
// @Success 201 {object} models.Vocabulary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Folder not found"
// @Router /vocabulary [post]
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateVocabularyRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	item, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create vocabulary item", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, item)
}

// ListByFolder handles GET /api/vocabulary/{folderId}
// @Summary List vocabulary of a folder
// @Description Items of the folder visible to the caller plus every public item
// @Tags vocabulary
// @Produce json
// @Security ApiKeyAuth
// @Param folderId path int true "Folder ID"
// @Success 200 {array} models.Vocabulary
// @Failure 400 {object} ErrorResponse
// @Router /vocabulary/{folderId} [get]
func (h *VocabularyHandler) ListByFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	folderID, ok := h.pathID(w, r, "folderId")
	if !ok {
		return
	}

	items, err := h.service.ListByFolder(r.Context(), userID, folderID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list vocabulary", zap.Int("folderID", folderID))
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// UpdateReactions handles POST /api/vocabulary/{id}/reactions
// @Summary Replace vocabulary reactions
// @Tags vocabulary
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Vocabulary ID"
// @Param request body models.Reactions true "Reaction counts"
// @Success 200 {object} models.Vocabulary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vocabulary/{id}/reactions [post]
func (h *VocabularyHandler) UpdateReactions(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.service.UpdateReactions(r.Context(), userID, id, reactions)
	if err != nil {
		h.respondServiceError(w, err, "failed to update vocabulary reactions", zap.Int("vocabularyID", id))
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}
