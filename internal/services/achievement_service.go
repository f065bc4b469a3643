package services

import (
	"context"
	"time"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// AchievementRepository is the interface that wraps methods for achievements collection access
type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	ListByUser(ctx context.Context, userID int) ([]models.Achievement, error)
}

type achievementService struct {
	repo   AchievementRepository
	logger *zap.Logger
}

// NewAchievementService creates a new achievement service
func NewAchievementService(repo AchievementRepository, logger *zap.Logger) *achievementService {
	return &achievementService{
		repo:   repo,
		logger: logger,
	}
}

// Create records an achievement earned by the user
func (s *achievementService) Create(ctx context.Context, userID int, req *models.CreateAchievementRequest) (*models.Achievement, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	achievement := &models.Achievement{
		UserID:   userID,
		Type:     req.Type,
		Label:    req.Label,
		EarnedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, achievement); err != nil {
		return nil, err
	}

	return achievement, nil
}

// List returns the achievements of the user, most recent first
func (s *achievementService) List(ctx context.Context, userID int) ([]models.Achievement, error) {
	return s.repo.ListByUser(ctx, userID)
}
