package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// MoodService is the interface that wraps methods for mood tracking
type MoodService interface {
	Create(ctx context.Context, userID int, req *models.CreateMoodRequest) (*models.Mood, error)
	// List returns the newest moods first. "limitParam" is the raw query value, empty means the default.
	List(ctx context.Context, userID int, limitParam string) ([]models.Mood, error)
}

// AchievementService is the interface that wraps methods for achievements
type AchievementService interface {
	Create(ctx context.Context, userID int, req *models.CreateAchievementRequest) (*models.Achievement, error)
	List(ctx context.Context, userID int) ([]models.Achievement, error)
}

// ProgressHandler handles HTTP requests for moods and achievements
type ProgressHandler struct {
	BaseHandler
	moods        MoodService
	achievements AchievementService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(moods MoodService, achievements AchievementService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:  BaseHandler{logger: logger},
		moods:        moods,
		achievements: achievements,
	}
}

// RegisterRoutes registers all mood and achievement routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Post("/moods", h.CreateMood)
	r.Get("/moods", h.ListMoods)
	r.Post("/achievements", h.CreateAchievement)
	r.Get("/achievements", h.ListAchievements)
}

// CreateMood handles POST /api/moods
// @Summary Record mood
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateMoodRequest true "Mood"
// @Success 201 {object} models.Mood
// @Failure 400 {object} ErrorResponse
// @Router /moods [post]
func (h *ProgressHandler) CreateMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateMoodRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	mood, err := h.moods.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create mood", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, mood)
}

// ListMoods handles GET /api/moods
// @Summary List moods
// @Description Latest moods of the caller, newest first
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of moods, default: 30"
// @Success 200 {array} models.Mood
// @Failure 400 {object} ErrorResponse
// @Router /moods [get]
func (h *ProgressHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	moods, err := h.moods.List(r.Context(), userID, r.URL.Query().Get("limit"))
	if err != nil {
		h.respondServiceError(w, err, "failed to list moods", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, moods)
}

// CreateAchievement handles POST /api/achievements
// @Summary Record achievement
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateAchievementRequest true "Achievement"
// @Success 201 {object} models.Achievement
// @Failure 400 {object} ErrorResponse
// @Router /achievements [post]
func (h *ProgressHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateAchievementRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	achievement, err := h.achievements.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create achievement", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, achievement)
}

// ListAchievements handles GET /api/achievements
// @Summary List achievements
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Achievement
// @Router /achievements [get]
func (h *ProgressHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	achievements, err := h.achievements.List(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list achievements", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, achievements)
}
