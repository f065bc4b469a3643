package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
)

// TargetChecker verifies that a comment or feedback target exists and is visible to the user
type TargetChecker interface {
	CheckVisible(ctx context.Context, targetType models.TargetType, targetID, userID int) error
}

type passageGetter interface {
	GetByID(ctx context.Context, id int) (*models.Passage, error)
}

type vocabularyGetter interface {
	GetByID(ctx context.Context, id int) (*models.Vocabulary, error)
}

type writingGetter interface {
	GetByID(ctx context.Context, id int) (*models.Writing, error)
}

type speakingGetter interface {
	GetByID(ctx context.Context, id int) (*models.Speaking, error)
}

// targetResolver looks targets up in the collection named by their type
type targetResolver struct {
	passages   passageGetter
	vocabulary vocabularyGetter
	writings   writingGetter
	speaking   speakingGetter
}

// NewTargetResolver creates a TargetChecker backed by the content repositories
func NewTargetResolver(passages passageGetter, vocabulary vocabularyGetter, writings writingGetter, speaking speakingGetter) *targetResolver {
	return &targetResolver{
		passages:   passages,
		vocabulary: vocabulary,
		writings:   writings,
		speaking:   speaking,
	}
}

// CheckVisible returns a not found error if the target does not exist or belongs privately to someone else
func (r *targetResolver) CheckVisible(ctx context.Context, targetType models.TargetType, targetID, userID int) error {
	var (
		visible bool
		err     error
	)

	switch targetType {
	case models.TargetTypePassage:
		var p *models.Passage
		if p, err = r.passages.GetByID(ctx, targetID); err == nil {
			visible = p.VisibleTo(userID)
		}
	case models.TargetTypeVocabulary:
		var v *models.Vocabulary
		if v, err = r.vocabulary.GetByID(ctx, targetID); err == nil {
			visible = v.VisibleTo(userID)
		}
	case models.TargetTypeWriting:
		var w *models.Writing
		if w, err = r.writings.GetByID(ctx, targetID); err == nil {
			visible = w.VisibleTo(userID)
		}
	case models.TargetTypeSpeaking:
		var s *models.Speaking
		if s, err = r.speaking.GetByID(ctx, targetID); err == nil {
			visible = s.VisibleTo(userID)
		}
	default:
		return invalidTargetType()
	}

	if err != nil {
		return translateNotFound(err, "Target")
	}
	if !visible {
		return notFound("Target")
	}
	return nil
}

func invalidTargetType() error {
	return &ValidationError{Fields: []FieldError{{
		Field:   "targetType",
		Message: "must be one of: passage, vocabulary, writing, speaking",
	}}}
}

// parseTargetType validates a target type taken from a URL
func parseTargetType(targetType string) (models.TargetType, error) {
	t := models.TargetType(targetType)
	if !t.IsValid() {
		return "", invalidTargetType()
	}
	return t, nil
}
