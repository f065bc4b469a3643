package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// WritingRepository is the interface that wraps methods for writing collection access
type WritingRepository interface {
	Create(ctx context.Context, writing *models.Writing) error
	GetByID(ctx context.Context, id int) (*models.Writing, error)
	ListVisible(ctx context.Context, userID int) ([]models.Writing, error)
	UpdateReactions(ctx context.Context, id int, reactions models.Reactions) error
}

type writingService struct {
	repo   WritingRepository
	logger *zap.Logger
}

// NewWritingService creates a new writing service
func NewWritingService(repo WritingRepository, logger *zap.Logger) *writingService {
	return &writingService{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a writing submitted by the user
func (s *writingService) Create(ctx context.Context, userID int, req *models.CreateWritingRequest) (*models.Writing, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	writing := &models.Writing{
		Title:     req.Title,
		Content:   req.Content,
		UserID:    userID,
		Reactions: models.NewReactions(),
		IsPublic:  req.IsPublic,
	}
	if err := s.repo.Create(ctx, writing); err != nil {
		return nil, err
	}

	return writing, nil
}

// List returns the writings owned by the user and every public writing
func (s *writingService) List(ctx context.Context, userID int) ([]models.Writing, error) {
	return s.repo.ListVisible(ctx, userID)
}

// UpdateReactions replaces the reaction map of a writing visible to the user
func (s *writingService) UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) error {
	if !reactions.Valid() {
		return ErrNegativeReaction
	}

	writing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err, "Writing")
	}
	if !writing.VisibleTo(userID) {
		return notFound("Writing")
	}

	if err := s.repo.UpdateReactions(ctx, id, normalizeReactions(reactions)); err != nil {
		return translateNotFound(err, "Writing")
	}
	return nil
}
