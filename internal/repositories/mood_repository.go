package repositories

import (
	"context"
	"time"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type moodRepository struct {
	moods  *storage.Collection[models.Mood, *models.Mood]
	logger *zap.Logger
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(store *storage.Store, logger *zap.Logger) *moodRepository {
	return &moodRepository{
		moods:  storage.NewCollection[models.Mood](store, moodsCollection, document(moodsCollection)),
		logger: logger,
	}
}

// Create stores a new mood and sets its id
func (r *moodRepository) Create(ctx context.Context, mood *models.Mood) error {
	created, err := r.moods.Create(ctx, *mood)
	if err != nil {
		return wrapError(r.logger, err, "failed to create mood")
	}
	mood.ID = created.ID
	return nil
}

// ListByUser returns at most limit moods of the user, newest first
func (r *moodRepository) ListByUser(ctx context.Context, userID, limit int) ([]models.Mood, error) {
	moods, err := r.moods.List(ctx, func(m *models.Mood) bool {
		return m.UserID == userID
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list moods", zap.Int("userID", userID))
	}

	sortNewestFirst(moods,
		func(m *models.Mood) time.Time { return m.Timestamp },
		func(m *models.Mood) int { return m.ID },
	)
	if limit >= 0 && len(moods) > limit {
		moods = moods[:limit]
	}
	return moods, nil
}
