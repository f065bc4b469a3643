package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// SpeakingRepository is the interface that wraps methods for speaking collection access
type SpeakingRepository interface {
	Create(ctx context.Context, speaking *models.Speaking) error
	GetByID(ctx context.Context, id int) (*models.Speaking, error)
	ListVisible(ctx context.Context, userID int) ([]models.Speaking, error)
	UpdateReactions(ctx context.Context, id int, reactions models.Reactions) error
}

type speakingService struct {
	repo   SpeakingRepository
	logger *zap.Logger
}

// NewSpeakingService creates a new speaking service
func NewSpeakingService(repo SpeakingRepository, logger *zap.Logger) *speakingService {
	return &speakingService{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a speaking recording submitted by the user
func (s *speakingService) Create(ctx context.Context, userID int, req *models.CreateSpeakingRequest) (*models.Speaking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	speaking := &models.Speaking{
		Title:     req.Title,
		AudioURL:  req.AudioURL,
		UserID:    userID,
		Reactions: models.NewReactions(),
		IsPublic:  req.IsPublic,
	}
	if err := s.repo.Create(ctx, speaking); err != nil {
		return nil, err
	}

	return speaking, nil
}

// List returns the recordings owned by the user and every public recording
func (s *speakingService) List(ctx context.Context, userID int) ([]models.Speaking, error) {
	return s.repo.ListVisible(ctx, userID)
}

// UpdateReactions replaces the reaction map of a recording visible to the user
func (s *speakingService) UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) error {
	if !reactions.Valid() {
		return ErrNegativeReaction
	}

	speaking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err, "Speaking")
	}
	if !speaking.VisibleTo(userID) {
		return notFound("Speaking")
	}

	if err := s.repo.UpdateReactions(ctx, id, normalizeReactions(reactions)); err != nil {
		return translateNotFound(err, "Speaking")
	}
	return nil
}
