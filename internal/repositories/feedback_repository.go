package repositories

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type feedbackRepository struct {
	feedback *storage.Collection[models.Feedback, *models.Feedback]
	logger   *zap.Logger
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(store *storage.Store, logger *zap.Logger) *feedbackRepository {
	return &feedbackRepository{
		feedback: storage.NewCollection[models.Feedback](store, feedbackCollection, document(feedbackCollection)),
		logger:   logger,
	}
}

// Create stores a new feedback entry and sets its id
func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	created, err := r.feedback.Create(ctx, *feedback)
	if err != nil {
		return wrapError(r.logger, err, "failed to create feedback")
	}
	feedback.ID = created.ID
	return nil
}

// ListByTarget returns feedback left on the target in creation order
func (r *feedbackRepository) ListByTarget(ctx context.Context, targetType models.TargetType, targetID int) ([]models.Feedback, error) {
	feedback, err := r.feedback.List(ctx, func(f *models.Feedback) bool {
		return f.TargetType == targetType && f.TargetID == targetID
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list feedback",
			zap.String("targetType", string(targetType)), zap.Int("targetID", targetID))
	}
	return feedback, nil
}
