package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// CommentService is the interface that wraps methods for comments business logic.
type CommentService interface {
	// Method Create posts a comment on a passage, vocabulary item, writing or speaking recording.
	//
	// The target must exist and be visible to "userID", otherwise a not found error is returned.
	Create(ctx context.Context, userID int, req *models.CreateCommentRequest) (*models.Comment, error)
	// Method ListByTarget returns the comments on the target visible to "userID", newest first.
	ListByTarget(ctx context.Context, userID int, targetType string, targetID int) ([]models.Comment, error)
	// Method Delete removes a comment.
	//
	// Only the author or an admin may delete, otherwise services.ErrCommentDeleteDenied is returned.
	Delete(ctx context.Context, userID, id int) error
}

// FeedbackService is the interface that wraps methods for feedback business logic
type FeedbackService interface {
	Create(ctx context.Context, userID int, req *models.CreateFeedbackRequest) (*models.Feedback, error)
	ListByTarget(ctx context.Context, userID int, targetType string, targetID int) ([]models.Feedback, error)
}

// CommentHandler handles HTTP requests for comments and feedback
type CommentHandler struct {
	BaseHandler
	comments CommentService
	feedback FeedbackService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments CommentService, feedback FeedbackService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		BaseHandler: BaseHandler{logger: logger},
		comments:    comments,
		feedback:    feedback,
	}
}

// RegisterRoutes registers all comment and feedback routes
func (h *CommentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/comments", h.CreateComment)
	r.Get("/comments/{targetType}/{targetId}", h.ListComments)
	r.Delete("/comments/{id}", h.DeleteComment)

	r.Post("/feedback", h.CreateFeedback)
	r.Get("/feedback/{targetType}/{targetId}", h.ListFeedback)
}

// CreateComment handles POST /api/comments
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateCommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} ErrorResponse "Validation details"
// @Failure 404 {object} ErrorResponse "Target not found"
// @Router /comments [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.comments.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create comment", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, comment)
}

// ListComments handles GET /api/comments/{targetType}/{targetId}
// @Summary List comments of a target
// @Tags comments
// @Produce json
// @Security ApiKeyAuth
// @Param targetType path string true "passage, vocabulary, writing or speaking"
// @Param targetId path int true "Target ID"
// @Success 200 {array} models.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/{targetType}/{targetId} [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	targetID, ok := h.pathID(w, r, "targetId")
	if !ok {
		return
	}
	targetType := chi.URLParam(r, "targetType")

	comments, err := h.comments.ListByTarget(r.Context(), userID, targetType, targetID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list comments",
			zap.String("targetType", targetType),
			zap.Int("targetID", targetID),
		)
		return
	}

	h.respondJSON(w, http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/comments/{id}
// @Summary Delete comment
// @Description Only the author or an admin may delete a comment
// @Tags comments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.comments.Delete(r.Context(), userID, id); err != nil {
		h.respondServiceError(w, err, "failed to delete comment", zap.Int("commentID", id))
		return
	}

	h.respondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// CreateFeedback handles POST /api/feedback
// @Summary Create feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} models.Feedback
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Target not found"
// @Router /feedback [post]
func (h *CommentHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateFeedbackRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	feedback, err := h.feedback.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create feedback", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, feedback)
}

// ListFeedback handles GET /api/feedback/{targetType}/{targetId}
// @Summary List feedback of a target
// @Tags feedback
// @Produce json
// @Security ApiKeyAuth
// @Param targetType path string true "passage, vocabulary, writing or speaking"
// @Param targetId path int true "Target ID"
// @Success 200 {array} models.Feedback
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /feedback/{targetType}/{targetId} [get]
func (h *CommentHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	targetID, ok := h.pathID(w, r, "targetId")
	if !ok {
		return
	}
	targetType := chi.URLParam(r, "targetType")

	feedback, err := h.feedback.ListByTarget(r.Context(), userID, targetType, targetID)
	if err != nil {
		h.respondServiceError(w, err, "failed to list feedback",
			zap.String("targetType", targetType),
			zap.Int("targetID", targetID),
		)
		return
	}

	h.respondJSON(w, http.StatusOK, feedback)
}
