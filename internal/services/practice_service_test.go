package services

import (
	"context"
	"errors"
	"testing"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockVocabularyRepository is a mock implementation of VocabularyRepository
type mockVocabularyRepository struct {
	items map[int]*models.Vocabulary
	err   error
}

func (m *mockVocabularyRepository) Create(ctx context.Context, item *models.Vocabulary) error {
	if m.err != nil {
		return m.err
	}
	item.ID = len(m.items) + 1
	m.items[item.ID] = item
	return nil
}

func (m *mockVocabularyRepository) GetByID(ctx context.Context, id int) (*models.Vocabulary, error) {
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return item, nil
}

func (m *mockVocabularyRepository) ListByFolder(ctx context.Context, folderID, userID int) ([]models.Vocabulary, error) {
	return nil, m.err
}

func (m *mockVocabularyRepository) UpdateReactions(ctx context.Context, id int, reactions models.Reactions) (*models.Vocabulary, error) {
	item, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Reactions = reactions
	return item, nil
}

// mockWritingRepository is a mock implementation of WritingRepository
type mockWritingRepository struct {
	writings         map[int]*models.Writing
	updatedReactions models.Reactions
	err              error
}

func (m *mockWritingRepository) Create(ctx context.Context, writing *models.Writing) error {
	if m.err != nil {
		return m.err
	}
	writing.ID = len(m.writings) + 1
	m.writings[writing.ID] = writing
	return nil
}

func (m *mockWritingRepository) GetByID(ctx context.Context, id int) (*models.Writing, error) {
	if m.err != nil {
		return nil, m.err
	}
	w, ok := m.writings[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return w, nil
}

func (m *mockWritingRepository) ListVisible(ctx context.Context, userID int) ([]models.Writing, error) {
	return nil, m.err
}

func (m *mockWritingRepository) UpdateReactions(ctx context.Context, id int, reactions models.Reactions) error {
	m.updatedReactions = reactions
	return m.err
}

// mockSpeakingRepository is a mock implementation of SpeakingRepository
type mockSpeakingRepository struct {
	recordings map[int]*models.Speaking
	err        error
}

func (m *mockSpeakingRepository) Create(ctx context.Context, speaking *models.Speaking) error {
	if m.err != nil {
		return m.err
	}
	speaking.ID = len(m.recordings) + 1
	m.recordings[speaking.ID] = speaking
	return nil
}

func (m *mockSpeakingRepository) GetByID(ctx context.Context, id int) (*models.Speaking, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.recordings[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return s, nil
}

func (m *mockSpeakingRepository) ListVisible(ctx context.Context, userID int) ([]models.Speaking, error) {
	return nil, m.err
}

func (m *mockSpeakingRepository) UpdateReactions(ctx context.Context, id int, reactions models.Reactions) error {
	return m.err
}

// mockFeedbackRepository is a mock implementation of FeedbackRepository
type mockFeedbackRepository struct {
	feedback []models.Feedback
	err      error
}

func (m *mockFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if m.err != nil {
		return m.err
	}
	feedback.ID = len(m.feedback) + 1
	m.feedback = append(m.feedback, *feedback)
	return nil
}

func (m *mockFeedbackRepository) ListByTarget(ctx context.Context, targetType models.TargetType, targetID int) ([]models.Feedback, error) {
	return m.feedback, m.err
}

// mockAchievementRepository is a mock implementation of AchievementRepository
type mockAchievementRepository struct {
	created *models.Achievement
	err     error
}

func (m *mockAchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	if m.err != nil {
		return m.err
	}
	achievement.ID = 1
	m.created = achievement
	return nil
}

func (m *mockAchievementRepository) ListByUser(ctx context.Context, userID int) ([]models.Achievement, error) {
	return nil, m.err
}

func TestVocabularyService_Create(t *testing.T) {
	folders := &mockFolderRepository{folders: map[int]*models.Folder{
		1: {ID: 1, UserID: 1, Type: models.FolderTypeVocabulary},
		2: {ID: 2, UserID: 2, Type: models.FolderTypeVocabulary},
	}}

	tests := []struct {
		name        string
		userID      int
		req         *models.CreateVocabularyRequest
		expectedErr error
	}{
		{
			name:   "success in own folder",
			userID: 1,
			req:    &models.CreateVocabularyRequest{Word: "arid", Definition: "very dry", FolderID: intPtr(1)},
		},
		{
			name:        "private folder of another user",
			userID:      1,
			req:         &models.CreateVocabularyRequest{Word: "arid", Definition: "very dry", FolderID: intPtr(2)},
			expectedErr: ErrNotFound,
		},
		{
			name:        "missing definition",
			userID:      1,
			req:         &models.CreateVocabularyRequest{Word: "arid"},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockVocabularyRepository{items: map[int]*models.Vocabulary{}}
			svc := NewVocabularyService(repo, folders, zap.NewNop())

			item, err := svc.Create(context.Background(), tt.userID, tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, repo.items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, item.ID)
			assert.Equal(t, tt.userID, item.UserID)
			assert.NotNil(t, item.Reactions)
		})
	}
}

func TestVocabularyService_UpdateReactions(t *testing.T) {
	repo := &mockVocabularyRepository{items: map[int]*models.Vocabulary{
		1: {ID: 1, UserID: 1, Reactions: models.Reactions{"helpful": 3}},
		2: {ID: 2, UserID: 2},
	}}
	svc := NewVocabularyService(repo, &mockFolderRepository{}, zap.NewNop())
	ctx := context.Background()

	item, err := svc.UpdateReactions(ctx, 1, 1, models.Reactions{"helpful": 0})
	require.NoError(t, err)
	count, ok := item.Reactions["helpful"]
	assert.True(t, ok)
	assert.Equal(t, 0, count)

	_, err = svc.UpdateReactions(ctx, 1, 2, models.Reactions{"helpful": 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateReactions(ctx, 1, 1, models.Reactions{"helpful": -2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWritingService(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		repo := &mockWritingRepository{writings: map[int]*models.Writing{}}
		svc := NewWritingService(repo, zap.NewNop())

		writing, err := svc.Create(ctx, 3, &models.CreateWritingRequest{Title: "Essay", Content: "Body", IsPublic: true})

		require.NoError(t, err)
		assert.Equal(t, 3, writing.UserID)
		assert.True(t, writing.IsPublic)
		assert.Equal(t, models.Reactions{}, writing.Reactions)
	})

	t.Run("update reactions", func(t *testing.T) {
		tests := []struct {
			name        string
			userID      int
			id          int
			reactions   models.Reactions
			expectedErr error
		}{
			{name: "owner", userID: 1, id: 1, reactions: models.Reactions{"star": 1}},
			{name: "public writing of another user", userID: 2, id: 2, reactions: models.Reactions{"star": 1}},
			{name: "private writing of another user", userID: 2, id: 1, reactions: models.Reactions{"star": 1}, expectedErr: ErrNotFound},
			{name: "missing writing", userID: 1, id: 9, reactions: models.Reactions{"star": 1}, expectedErr: ErrNotFound},
			{name: "null map becomes empty", userID: 1, id: 1, reactions: nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &mockWritingRepository{writings: map[int]*models.Writing{
					1: {ID: 1, UserID: 1},
					2: {ID: 2, UserID: 1, IsPublic: true},
				}}
				svc := NewWritingService(repo, zap.NewNop())

				err := svc.UpdateReactions(ctx, tt.userID, tt.id, tt.reactions)

				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
					assert.Nil(t, repo.updatedReactions)
					return
				}
				require.NoError(t, err)
				assert.NotNil(t, repo.updatedReactions)
			})
		}
	})
}

func TestSpeakingService_Create(t *testing.T) {
	repo := &mockSpeakingRepository{recordings: map[int]*models.Speaking{}}
	svc := NewSpeakingService(repo, zap.NewNop())
	ctx := context.Background()

	speaking, err := svc.Create(ctx, 1, &models.CreateSpeakingRequest{Title: "Task 1", AudioURL: "/api/media/audio/a.webm"})
	require.NoError(t, err)
	assert.Equal(t, 1, speaking.ID)

	_, err = svc.Create(ctx, 1, &models.CreateSpeakingRequest{Title: "Task 1"})
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "audioUrl", validationErr.Fields[0].Field)
}

func TestTargetResolver_CheckVisible(t *testing.T) {
	passages := &mockPassageRepository{passages: map[int]*models.Passage{
		1: {ID: 1, UserID: 1},
		2: {ID: 2, UserID: 1, IsPublic: true},
	}}
	vocabulary := &mockVocabularyRepository{items: map[int]*models.Vocabulary{1: {ID: 1, UserID: 2}}}
	writings := &mockWritingRepository{writings: map[int]*models.Writing{1: {ID: 1, UserID: 2}}}
	speaking := &mockSpeakingRepository{recordings: map[int]*models.Speaking{}}
	resolver := NewTargetResolver(passages, vocabulary, writings, speaking)

	tests := []struct {
		name        string
		targetType  models.TargetType
		targetID    int
		userID      int
		expectedErr error
	}{
		{name: "own private passage", targetType: models.TargetTypePassage, targetID: 1, userID: 1},
		{name: "public passage", targetType: models.TargetTypePassage, targetID: 2, userID: 2},
		{name: "private passage of another user", targetType: models.TargetTypePassage, targetID: 1, userID: 2, expectedErr: ErrNotFound},
		{name: "own vocabulary", targetType: models.TargetTypeVocabulary, targetID: 1, userID: 2},
		{name: "private writing of another user", targetType: models.TargetTypeWriting, targetID: 1, userID: 1, expectedErr: ErrNotFound},
		{name: "missing speaking", targetType: models.TargetTypeSpeaking, targetID: 1, userID: 1, expectedErr: ErrNotFound},
		{name: "unknown type", targetType: "lesson", targetID: 1, userID: 1, expectedErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resolver.CheckVisible(context.Background(), tt.targetType, tt.targetID, tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFeedbackService(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		repo := &mockFeedbackRepository{}
		targets := &mockTargetChecker{}
		svc := NewFeedbackService(repo, targets, zap.NewNop())

		feedback, err := svc.Create(ctx, 1, &models.CreateFeedbackRequest{
			Content:    "Clear structure",
			TargetType: models.TargetTypeWriting,
			TargetID:   4,
		})

		require.NoError(t, err)
		assert.True(t, targets.called)
		assert.Equal(t, 1, feedback.ID)
		assert.Equal(t, models.TargetTypeWriting, feedback.TargetType)
	})

	t.Run("missing target", func(t *testing.T) {
		repo := &mockFeedbackRepository{}
		svc := NewFeedbackService(repo, &mockTargetChecker{err: notFound("Target")}, zap.NewNop())

		_, err := svc.Create(ctx, 1, &models.CreateFeedbackRequest{
			Content:    "Clear structure",
			TargetType: models.TargetTypeWriting,
			TargetID:   4,
		})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, repo.feedback)
	})

	t.Run("list with invalid target type", func(t *testing.T) {
		targets := &mockTargetChecker{}
		svc := NewFeedbackService(&mockFeedbackRepository{}, targets, zap.NewNop())

		_, err := svc.ListByTarget(ctx, 1, "folder", 1)

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.False(t, targets.called)
	})

	t.Run("list", func(t *testing.T) {
		repo := &mockFeedbackRepository{feedback: []models.Feedback{{ID: 1, TargetType: models.TargetTypePassage, TargetID: 2}}}
		svc := NewFeedbackService(repo, &mockTargetChecker{}, zap.NewNop())

		feedback, err := svc.ListByTarget(ctx, 1, "passage", 2)

		require.NoError(t, err)
		assert.Len(t, feedback, 1)
	})
}

func TestAchievementService_Create(t *testing.T) {
	repo := &mockAchievementRepository{}
	svc := NewAchievementService(repo, zap.NewNop())
	ctx := context.Background()

	achievement, err := svc.Create(ctx, 5, &models.CreateAchievementRequest{Type: "streak", Label: "7 days in a row"})
	require.NoError(t, err)
	assert.Equal(t, 5, achievement.UserID)
	assert.False(t, achievement.EarnedAt.IsZero())

	_, err = svc.Create(ctx, 5, &models.CreateAchievementRequest{Type: "gold", Label: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLessonService_Create(t *testing.T) {
	repo := &mockLessonRepository{lessons: map[int]*models.Lesson{}}
	svc := NewLessonService(repo, zap.NewNop())

	lesson, err := svc.Create(context.Background(), 2, &models.CreateLessonRequest{
		Title:         "Lecture",
		Transcription: "Today we discuss...",
		Questions: models.Questions{
			{Text: "Main idea?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, lesson.UserID)
	assert.Len(t, lesson.Questions, 1)
	assert.Nil(t, lesson.AudioURL)
}
