package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// FeedbackRepository is the interface that wraps methods for feedback collection access
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByTarget(ctx context.Context, targetType models.TargetType, targetID int) ([]models.Feedback, error)
}

type feedbackService struct {
	repo    FeedbackRepository
	targets TargetChecker
	logger  *zap.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo FeedbackRepository, targets TargetChecker, logger *zap.Logger) *feedbackService {
	return &feedbackService{
		repo:    repo,
		targets: targets,
		logger:  logger,
	}
}

// Create leaves feedback on a target visible to the user
func (s *feedbackService) Create(ctx context.Context, userID int, req *models.CreateFeedbackRequest) (*models.Feedback, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.targets.CheckVisible(ctx, req.TargetType, req.TargetID, userID); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		Content:    req.Content,
		UserID:     userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListByTarget returns the feedback left on a target visible to the user
func (s *feedbackService) ListByTarget(ctx context.Context, userID int, targetType string, targetID int) ([]models.Feedback, error) {
	t, err := parseTargetType(targetType)
	if err != nil {
		return nil, err
	}
	if err := s.targets.CheckVisible(ctx, t, targetID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByTarget(ctx, t, targetID)
}
