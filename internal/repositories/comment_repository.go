package repositories

import (
	"context"
	"time"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type commentRepository struct {
	comments *storage.Collection[models.Comment, *models.Comment]
	logger   *zap.Logger
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(store *storage.Store, logger *zap.Logger) *commentRepository {
	return &commentRepository{
		comments: storage.NewCollection[models.Comment](store, commentsCollection, document(commentsCollection)),
		logger:   logger,
	}
}

// Create stores a new comment and sets its id
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	created, err := r.comments.Create(ctx, *comment)
	if err != nil {
		return wrapError(r.logger, err, "failed to create comment")
	}
	comment.ID = created.ID
	return nil
}

// GetByID retrieves a comment by id
func (r *commentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	comment, err := r.comments.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get comment", zap.Int("commentID", id))
	}
	return comment, nil
}

// ListByTarget returns comments on the target visible to the user, newest first
func (r *commentRepository) ListByTarget(ctx context.Context, targetType models.TargetType, targetID, userID int) ([]models.Comment, error) {
	comments, err := r.comments.List(ctx, func(c *models.Comment) bool {
		return c.TargetType == targetType && c.TargetID == targetID && c.VisibleTo(userID)
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list comments",
			zap.String("targetType", string(targetType)), zap.Int("targetID", targetID))
	}

	sortNewestFirst(comments,
		func(c *models.Comment) time.Time { return c.CreatedAt },
		func(c *models.Comment) int { return c.ID },
	)
	return comments, nil
}

// Delete removes the comment
func (r *commentRepository) Delete(ctx context.Context, id int) error {
	if err := r.comments.Delete(ctx, id); err != nil {
		return wrapError(r.logger, err, "failed to delete comment", zap.Int("commentID", id))
	}
	return nil
}
