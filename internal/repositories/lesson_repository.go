package repositories

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

type lessonRepository struct {
	lessons *storage.Collection[models.Lesson, *models.Lesson]
	logger  *zap.Logger
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(store *storage.Store, logger *zap.Logger) *lessonRepository {
	return &lessonRepository{
		lessons: storage.NewCollection[models.Lesson](store, lessonsCollection, document(lessonsCollection)),
		logger:  logger,
	}
}

// Create stores a new lesson and sets its id
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	created, err := r.lessons.Create(ctx, *lesson)
	if err != nil {
		return wrapError(r.logger, err, "failed to create lesson")
	}
	lesson.ID = created.ID
	return nil
}

// GetByID retrieves a lesson by id
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	lesson, err := r.lessons.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get lesson", zap.Int("lessonID", id))
	}
	return lesson, nil
}

// ListByUser returns the lessons created by the user
func (r *lessonRepository) ListByUser(ctx context.Context, userID int) ([]models.Lesson, error) {
	lessons, err := r.lessons.List(ctx, func(l *models.Lesson) bool {
		return l.UserID == userID
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to list lessons", zap.Int("userID", userID))
	}
	return lessons, nil
}
