package repositories

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type vocabularyRepository struct {
	items  *storage.Collection[models.Vocabulary, *models.Vocabulary]
	logger *zap.Logger
}

// NewVocabularyRepository creates a new vocabulary repository
func NewVocabularyRepository(store *storage.Store, logger *zap.Logger) *vocabularyRepository {
	return &vocabularyRepository{
		items:  storage.NewCollection[models.Vocabulary](store, vocabularyCollection, document(vocabularyCollection)),
		logger: logger,
	}
}

// Create stores a new vocabulary item and sets its id
func (r *vocabularyRepository) Create(ctx context.Context, item *models.Vocabulary) error {
	if item.Reactions == nil {
		item.Reactions = models.NewReactions()
	}

	created, err := r.items.Create(ctx, *item)
	if err != nil {
		return wrapError(r.logger, err, "failed to create vocabulary item")
	}
	item.ID = created.ID
	return nil
}

// GetByID retrieves a vocabulary item by id
func (r *vocabularyRepository) GetByID(ctx context.Context, id int) (*models.Vocabulary, error) {
	item, err := r.items.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get vocabulary item", zap.Int("vocabularyID", id))
	}
	return item, nil
}

// ListByFolder returns the items of the folder visible to the user together with every public item
func (r *vocabularyRepository) ListByFolder(ctx context.Context, folderID, userID int) ([]models.Vocabulary, error) {
	items, err := r.items.List(ctx, func(v *models.Vocabulary) bool {
		inFolder := v.FolderID != nil && *v.FolderID == folderID
		return (inFolder && v.VisibleTo(userID)) || v.IsPublic
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list vocabulary", zap.Int("folderID", folderID))
	}
	return items, nil
}

// UpdateReactions replaces the whole reaction map of the item
func (r *vocabularyRepository) UpdateReactions(ctx context.Context, id int, reactions models.Reactions) (*models.Vocabulary, error) {
	item, err := r.items.Update(ctx, id, func(v *models.Vocabulary) error {
		v.Reactions = reactions
		return nil
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to update vocabulary reactions", zap.Int("vocabularyID", id))
	}
	return item, nil
}
