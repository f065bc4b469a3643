package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for listening lessons business logic.
type LessonService interface {
	// Method Create stores a lesson owned by "userID".
	//
	// Every question must have exactly four options and a correct answer index between 0 and 3.
	Create(ctx context.Context, userID int, req *models.CreateLessonRequest) (*models.Lesson, error)
	// Method List returns the lessons owned by "userID".
	List(ctx context.Context, userID int) ([]models.Lesson, error)
	// Method Get returns a lesson owned by "userID". Lessons of other users are reported as not found.
	Get(ctx context.Context, userID, id int) (*models.Lesson, error)
}

// LessonHandler handles HTTP requests for listening lessons
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})
}

// Create handles POST /api/lessons
// @Summary Create lesson
// @Description Questions may be sent as an array or as a string containing a JSON array
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateLessonRequest true "Lesson"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} ErrorResponse
// @Router /lessons [post]
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateLessonRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	lesson, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create lesson", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, lesson)
}

// List handles GET /api/lessons
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Lesson
// @Router /lessons [get]
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	lessons, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list lessons", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, lessons)
}

// Get handles GET /api/lessons/{id}
// @Summary Get lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	lesson, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get lesson", zap.Int("lessonID", id))
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}
