package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// LessonRepository is the interface that wraps methods for lessons collection access
type LessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	ListByUser(ctx context.Context, userID int) ([]models.Lesson, error)
}

type lessonService struct {
	repo   LessonRepository
	logger *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(repo LessonRepository, logger *zap.Logger) *lessonService {
	return &lessonService{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a listening lesson of the user
func (s *lessonService) Create(ctx context.Context, userID int, req *models.CreateLessonRequest) (*models.Lesson, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		UserID:        userID,
		Title:         req.Title,
		Transcription: req.Transcription,
		Questions:     req.Questions,
		AudioURL:      req.AudioURL,
	}
	if err := s.repo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	return lesson, nil
}

// List returns the lessons of the user
func (s *lessonService) List(ctx context.Context, userID int) ([]models.Lesson, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns a lesson of the user. Lessons of other users are reported as not found.
func (s *lessonService) Get(ctx context.Context, userID, id int) (*models.Lesson, error) {
	lesson, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Lesson")
	}
	if lesson.UserID != userID {
		return nil, notFound("Lesson")
	}
	return lesson, nil
}
