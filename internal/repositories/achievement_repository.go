package repositories

import (
	"context"
	"time"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type achievementRepository struct {
	achievements *storage.Collection[models.Achievement, *models.Achievement]
	logger       *zap.Logger
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(store *storage.Store, logger *zap.Logger) *achievementRepository {
	return &achievementRepository{
		achievements: storage.NewCollection[models.Achievement](store, achievementsCollection, document(achievementsCollection)),
		logger:       logger,
	}
}

// Create stores a new achievement and sets its id
func (r *achievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	created, err := r.achievements.Create(ctx, *achievement)
	if err != nil {
		return wrapError(r.logger, err, "failed to create achievement")
	}
	achievement.ID = created.ID
	return nil
}

// ListByUser returns the achievements of the user, most recently earned first
func (r *achievementRepository) ListByUser(ctx context.Context, userID int) ([]models.Achievement, error) {
	achievements, err := r.achievements.List(ctx, func(a *models.Achievement) bool {
		return a.UserID == userID
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list achievements", zap.Int("userID", userID))
	}

	sortNewestFirst(achievements,
		func(a *models.Achievement) time.Time { return a.EarnedAt },
		func(a *models.Achievement) int { return a.ID },
	)
	return achievements, nil
}
