package services

import (
	"context"
	"strconv"
	"time"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// maxMoodLimit caps the number of moods returned by a single request
const maxMoodLimit = 365

// MoodRepository is the interface that wraps methods for moods collection access
type MoodRepository interface {
	Create(ctx context.Context, mood *models.Mood) error
	ListByUser(ctx context.Context, userID, limit int) ([]models.Mood, error)
}

type moodService struct {
	repo   MoodRepository
	logger *zap.Logger
}

// NewMoodService creates a new mood service
func NewMoodService(repo MoodRepository, logger *zap.Logger) *moodService {
	return &moodService{
		repo:   repo,
		logger: logger,
	}
}

// Create records the current mood of the user
func (s *moodService) Create(ctx context.Context, userID int, req *models.CreateMoodRequest) (*models.Mood, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	mood := &models.Mood{
		UserID:    userID,
		Mood:      req.Mood,
		Note:      req.Note,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, mood); err != nil {
		return nil, err
	}

	return mood, nil
}

// List returns the latest moods of the user.
// limitParam is the raw "limit" query value; empty means models.DefaultMoodLimit.
func (s *moodService) List(ctx context.Context, userID int, limitParam string) ([]models.Mood, error) {
	limit := models.DefaultMoodLimit
	if limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 || parsed > maxMoodLimit {
			return nil, &ValidationError{Fields: []FieldError{{
				Field:   "limit",
				Message: "must be a number between 1 and " + strconv.Itoa(maxMoodLimit),
			}}}
		}
		limit = parsed
	}

	return s.repo.ListByUser(ctx, userID, limit)
}
