package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// VocabularyRepository is the interface that wraps methods for vocabulary collection access
type VocabularyRepository interface {
	Create(ctx context.Context, item *models.Vocabulary) error
	GetByID(ctx context.Context, id int) (*models.Vocabulary, error)
	ListByFolder(ctx context.Context, folderID, userID int) ([]models.Vocabulary, error)
	UpdateReactions(ctx context.Context, id int, reactions models.Reactions) (*models.Vocabulary, error)
}

type vocabularyService struct {
	repo    VocabularyRepository
	folders FolderGetter
	logger  *zap.Logger
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(repo VocabularyRepository, folders FolderGetter, logger *zap.Logger) *vocabularyService {
	return &vocabularyService{
		repo:    repo,
		folders: folders,
		logger:  logger,
	}
}

// Create creates a vocabulary item owned by the user
func (s *vocabularyService) Create(ctx context.Context, userID int, req *models.CreateVocabularyRequest) (*models.Vocabulary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkFolder(ctx, s.folders, req.FolderID, userID, models.FolderTypeVocabulary); err != nil {
		return nil, err
	}

	item := &models.Vocabulary{
		Word:       req.Word,
		Definition: req.Definition,
		Example:    req.Example,
		UserID:     userID,
		FolderID:   req.FolderID,
		Reactions:  models.NewReactions(),
		IsPublic:   req.IsPublic,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// ListByFolder returns the folder items visible to the user plus every public item
func (s *vocabularyService) ListByFolder(ctx context.Context, userID, folderID int) ([]models.Vocabulary, error) {
	return s.repo.ListByFolder(ctx, folderID, userID)
}

// UpdateReactions replaces the reaction map of an item visible to the user
func (s *vocabularyService) UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) (*models.Vocabulary, error) {
	if !reactions.Valid() {
		return nil, ErrNegativeReaction
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Vocabulary item")
	}
	if !item.VisibleTo(userID) {
		return nil, notFound("Vocabulary item")
	}

	item, err = s.repo.UpdateReactions(ctx, id, normalizeReactions(reactions))
	if err != nil {
		return nil, translateNotFound(err, "Vocabulary item")
	}
	return item, nil
}
