package repositories

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type folderRepository struct {
	folders *storage.Collection[models.Folder, *models.Folder]
	logger  *zap.Logger
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(store *storage.Store, logger *zap.Logger) *folderRepository {
	return &folderRepository{
		folders: storage.NewCollection[models.Folder](store, foldersCollection, document(foldersCollection)),
		logger:  logger,
	}
}

// Create stores a new folder and sets its id
func (r *folderRepository) Create(ctx context.Context, folder *models.Folder) error {
	created, err := r.folders.Create(ctx, *folder)
	if err != nil {
		return wrapError(r.logger, err, "failed to create folder")
	}
	folder.ID = created.ID
	return nil
}

// GetByID retrieves a folder by id
func (r *folderRepository) GetByID(ctx context.Context, id int) (*models.Folder, error) {
	folder, err := r.folders.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get folder", zap.Int("folderID", id))
	}
	return folder, nil
}

// ListByType returns folders of the given type owned by the user or public
func (r *folderRepository) ListByType(ctx context.Context, folderType models.FolderType, userID int) ([]models.Folder, error) {
	folders, err := r.folders.List(ctx, func(f *models.Folder) bool {
		return f.Type == folderType && f.VisibleTo(userID)
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list folders", zap.String("type", string(folderType)))
	}
	return folders, nil
}
