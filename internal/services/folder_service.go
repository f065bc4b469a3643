package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// FolderRepository is the interface that wraps methods for folders collection access
type FolderRepository interface {
	FolderGetter
	// Method Create stores a new folder and sets its ID.
	Create(ctx context.Context, folder *models.Folder) error
	// Method ListByType returns folders of the given type owned by "userID" or public.
	ListByType(ctx context.Context, folderType models.FolderType, userID int) ([]models.Folder, error)
}

// FolderGetter retrieves a folder by ID
type FolderGetter interface {
	GetByID(ctx context.Context, id int) (*models.Folder, error)
}

// AdminChecker reports whether the stored user has the admin flag
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int) (bool, error)
}

type folderService struct {
	repo   FolderRepository
	admins AdminChecker
	logger *zap.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(repo FolderRepository, admins AdminChecker, logger *zap.Logger) *folderService {
	return &folderService{
		repo:   repo,
		admins: admins,
		logger: logger,
	}
}

// Create creates a folder owned by the user. Only admins may create public folders.
func (s *folderService) Create(ctx context.Context, userID int, req *models.CreateFolderRequest) (*models.Folder, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if req.IsPublic {
		isAdmin, err := s.admins.IsAdmin(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, ErrPublicFolderAdmin
		}
	}

	folder := &models.Folder{
		Name:     req.Name,
		UserID:   userID,
		Type:     req.Type,
		IsPublic: req.IsPublic,
	}
	if err := s.repo.Create(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// ListByType returns the folders of the given type visible to the user
func (s *folderService) ListByType(ctx context.Context, userID int, folderType string) ([]models.Folder, error) {
	t := models.FolderType(folderType)
	if !t.IsValid() {
		return nil, newError(ErrInvalidInput, "Folder type must be passage or vocabulary")
	}

	return s.repo.ListByType(ctx, t, userID)
}

// checkFolder verifies that folderID, when set, references a folder of the expected type visible to the user
func checkFolder(ctx context.Context, folders FolderGetter, folderID *int, userID int, expected models.FolderType) error {
	if folderID == nil {
		return nil
	}

	folder, err := folders.GetByID(ctx, *folderID)
	if err != nil {
		return translateNotFound(err, "Folder")
	}
	if !folder.VisibleTo(userID) {
		return notFound("Folder")
	}
	if folder.Type != expected {
		return &ValidationError{Fields: []FieldError{{
			Field:   "folderId",
			Message: "must reference a " + string(expected) + " folder",
		}}}
	}

	return nil
}
