package repositories

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type speakingRepository struct {
	recordings *storage.Collection[models.Speaking, *models.Speaking]
	logger     *zap.Logger
}

// NewSpeakingRepository creates a new speaking repository
func NewSpeakingRepository(store *storage.Store, logger *zap.Logger) *speakingRepository {
	return &speakingRepository{
		recordings: storage.NewCollection[models.Speaking](store, speakingCollection, document(speakingCollection)),
		logger:     logger,
	}
}

// Create stores a new recording and sets its id
func (r *speakingRepository) Create(ctx context.Context, speaking *models.Speaking) error {
	if speaking.Reactions == nil {
		speaking.Reactions = models.NewReactions()
	}

	created, err := r.recordings.Create(ctx, *speaking)
	if err != nil {
		return wrapError(r.logger, err, "failed to create speaking")
	}
	speaking.ID = created.ID
	return nil
}

// GetByID retrieves a recording by id
func (r *speakingRepository) GetByID(ctx context.Context, id int) (*models.Speaking, error) {
	speaking, err := r.recordings.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get speaking", zap.Int("speakingID", id))
	}
	return speaking, nil
}

// ListVisible returns recordings owned by the user or public
func (r *speakingRepository) ListVisible(ctx context.Context, userID int) ([]models.Speaking, error) {
	recordings, err := r.recordings.List(ctx, func(s *models.Speaking) bool {
		return s.VisibleTo(userID)
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list speaking")
	}
	return recordings, nil
}

// UpdateReactions replaces the whole reaction map of the recording
func (r *speakingRepository) UpdateReactions(ctx context.Context, id int, reactions models.Reactions) error {
	_, err := r.recordings.Update(ctx, id, func(s *models.Speaking) error {
		s.Reactions = reactions
		return nil
	})
	if err != nil {
		return wrapError(r.logger, err, "failed to update speaking reactions", zap.Int("speakingID", id))
	}
	return nil
}
