package repositories

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type passageRepository struct {
	passages *storage.Collection[models.Passage, *models.Passage]
	logger   *zap.Logger
}

// NewPassageRepository creates a new passage repository
func NewPassageRepository(store *storage.Store, logger *zap.Logger) *passageRepository {
	return &passageRepository{
		passages: storage.NewCollection[models.Passage](store, passagesCollection, document(passagesCollection)),
		logger:   logger,
	}
}

// Create stores a new passage and sets its id
func (r *passageRepository) Create(ctx context.Context, passage *models.Passage) error {
	if passage.Reactions == nil {
		passage.Reactions = models.NewReactions()
	}

	created, err := r.passages.Create(ctx, *passage)
	if err != nil {
		return wrapError(r.logger, err, "failed to create passage")
	}
	passage.ID = created.ID
	return nil
}

// GetByID retrieves a passage by id
func (r *passageRepository) GetByID(ctx context.Context, id int) (*models.Passage, error) {
	passage, err := r.passages.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get passage", zap.Int("passageID", id))
	}
	return passage, nil
}

// ListVisible returns passages owned by the user or public
func (r *passageRepository) ListVisible(ctx context.Context, userID int) ([]models.Passage, error) {
	passages, err := r.passages.List(ctx, func(p *models.Passage) bool {
		return p.VisibleTo(userID)
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list passages")
	}
	return passages, nil
}

// ListByFolder returns passages of the folder visible to the user
func (r *passageRepository) ListByFolder(ctx context.Context, folderID, userID int) ([]models.Passage, error) {
	passages, err := r.passages.List(ctx, func(p *models.Passage) bool {
		return p.FolderID != nil && *p.FolderID == folderID && p.VisibleTo(userID)
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list passages by folder", zap.Int("folderID", folderID))
	}
	return passages, nil
}

// UpdateReactions replaces the whole reaction map of the passage
func (r *passageRepository) UpdateReactions(ctx context.Context, id int, reactions models.Reactions) (*models.Passage, error) {
	passage, err := r.passages.Update(ctx, id, func(p *models.Passage) error {
		p.Reactions = reactions
		return nil
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to update passage reactions", zap.Int("passageID", id))
	}
	return passage, nil
}
