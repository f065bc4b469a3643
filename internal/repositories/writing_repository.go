package repositories

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type writingRepository struct {
	writings *storage.Collection[models.Writing, *models.Writing]
	logger   *zap.Logger
}

// NewWritingRepository creates a new writing repository
func NewWritingRepository(store *storage.Store, logger *zap.Logger) *writingRepository {
	return &writingRepository{
		writings: storage.NewCollection[models.Writing](store, writingCollection, document(writingCollection)),
		logger:   logger,
	}
}

// Create stores a new writing and sets its id
func (r *writingRepository) Create(ctx context.Context, writing *models.Writing) error {
	if writing.Reactions == nil {
		writing.Reactions = models.NewReactions()
	}

	created, err := r.writings.Create(ctx, *writing)
	if err != nil {
		return wrapError(r.logger, err, "failed to create writing")
	}
	writing.ID = created.ID
	return nil
}

// GetByID retrieves a writing by id
func (r *writingRepository) GetByID(ctx context.Context, id int) (*models.Writing, error) {
	writing, err := r.writings.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get writing", zap.Int("writingID", id))
	}
	return writing, nil
}

// ListVisible returns writings owned by the user or public
func (r *writingRepository) ListVisible(ctx context.Context, userID int) ([]models.Writing, error) {
	writings, err := r.writings.List(ctx, func(w *models.Writing) bool {
		return w.VisibleTo(userID)
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list writings")
	}
	return writings, nil
}

// UpdateReactions replaces the whole reaction map of the writing
func (r *writingRepository) UpdateReactions(ctx context.Context, id int, reactions models.Reactions) error {
	_, err := r.writings.Update(ctx, id, func(w *models.Writing) error {
		w.Reactions = reactions
		return nil
	})
	if err != nil {
		return wrapError(r.logger, err, "failed to update writing reactions", zap.Int("writingID", id))
	}
	return nil
}
