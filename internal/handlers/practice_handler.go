package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// WritingService is the interface that wraps methods for writing practice business logic
type WritingService interface {
	Create(ctx context.Context, userID int, req *models.CreateWritingRequest) (*models.Writing, error)
	List(ctx context.Context, userID int) ([]models.Writing, error)
	UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) error
}

// SpeakingService is the interface that wraps methods for speaking practice business logic
type SpeakingService interface {
	Create(ctx context.Context, userID int, req *models.CreateSpeakingRequest) (*models.Speaking, error)
	List(ctx context.Context, userID int) ([]models.Speaking, error)
	UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) error
}

// PracticeHandler handles HTTP requests for writing and speaking practice
type PracticeHandler struct {
	BaseHandler
	writings WritingService
	speaking SpeakingService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(writings WritingService, speaking SpeakingService, logger *zap.Logger) *PracticeHandler {
	return &PracticeHandler{
		BaseHandler: BaseHandler{logger: logger},
		writings:    writings,
		speaking:    speaking,
	}
}

// RegisterRoutes registers all practice handler routes
func (h *PracticeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/writings", func(r chi.Router) {
		r.Post("/", h.CreateWriting)
		r.Get("/", h.ListWritings)
		r.Post("/{id}/reactions", h.UpdateWritingReactions)
	})
	r.Route("/speaking", func(r chi.Router) {
		r.Post("/", h.CreateSpeaking)
		r.Get("/", h.ListSpeaking)
		r.Post("/{id}/reactions", h.UpdateSpeakingReactions)
	})
}

// CreateWriting handles POST /api/writings
// @Summary Create writing
// @Tags practice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateWritingRequest true "Writing"
// @Success 201 {object} models.Writing
// @Failure 400 {object} ErrorResponse
// @Router /writings [post]
func (h *PracticeHandler) CreateWriting(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateWritingRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	writing, err := h.writings.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create writing", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, writing)
}

// ListWritings handles GET /api/writings
// @Summary List writings
// @Description Writings of the caller and every public writing
// @Tags practice
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Writing
// @Router /writings [get]
func (h *PracticeHandler) ListWritings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	writings, err := h.writings.List(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list writings", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, writings)
}

// UpdateWritingReactions handles POST /api/writings/{id}/reactions
// @Summary Replace writing reactions
// @Tags practice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Writing ID"
// @Param request body models.Reactions true "Reaction counts"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /writings/{id}/reactions [post]
func (h *PracticeHandler) UpdateWritingReactions(w http.ResponseWriter, r *http.Request) {
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

	if err := h.writings.UpdateReactions(r.Context(), userID, id, reactions); err != nil {
		h.respondServiceError(w, err, "failed to update writing reactions", zap.Int("writingID", id))
		return
	}

	h.respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// CreateSpeaking handles POST /api/speaking
// @Summary Create speaking recording
// @Tags practice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateSpeakingRequest true "Speaking recording"
// @Success 201 {object} models.Speaking
// @Failure 400 {object} ErrorResponse
// @Router /speaking [post]
func (h *PracticeHandler) CreateSpeaking(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateSpeakingRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	speaking, err := h.speaking.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create speaking", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, speaking)
}

// ListSpeaking handles GET /api/speaking
// @Summary List speaking recordings
// @Tags practice
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Speaking
// @Router /speaking [get]
func (h *PracticeHandler) ListSpeaking(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	speaking, err := h.speaking.List(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list speaking", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, speaking)
}

// UpdateSpeakingReactions handles POST /api/speaking/{id}/reactions
// @Summary Replace speaking reactions
// @Tags practice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Speaking ID"
// @Param request body models.Reactions true "Reaction counts"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /speaking/{id}/reactions [post]
func (h *PracticeHandler) UpdateSpeakingReactions(w http.ResponseWriter, r *http.Request) {
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

	if err := h.speaking.UpdateReactions(r.Context(), userID, id, reactions); err != nil {
		h.respondServiceError(w, err, "failed to update speaking reactions", zap.Int("speakingID", id))
		return
	}

	h.respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}
