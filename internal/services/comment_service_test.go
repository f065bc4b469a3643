package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/learnlife319/app/internal/media"
	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCommentRepository is a mock implementation of CommentRepository
type mockCommentRepository struct {
	comments map[int]*models.Comment
	deleted  []int
	err      error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.err != nil {
		return m.err
	}
	comment.ID = len(m.comments) + 1
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return c, nil
}

func (m *mockCommentRepository) ListByTarget(ctx context.Context, targetType models.TargetType, targetID, userID int) ([]models.Comment, error) {
	return []models.Comment{}, m.err
}

func (m *mockCommentRepository) Delete(ctx context.Context, id int) error {
	if _, ok := m.comments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// mockMoodRepository is a mock implementation of MoodRepository
type mockMoodRepository struct {
	limit int
}

func (m *mockMoodRepository) Create(ctx context.Context, mood *models.Mood) error {
	mood.ID = 1
	return nil
}

func (m *mockMoodRepository) ListByUser(ctx context.Context, userID, limit int) ([]models.Mood, error) {
	m.limit = limit
	return []models.Mood{}, nil
}

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lessons map[int]*models.Lesson
}

func (m *mockLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.ID = len(m.lessons) + 1
	m.lessons[lesson.ID] = lesson
	return nil
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	l, ok := m.lessons[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return l, nil
}

func (m *mockLessonRepository) ListByUser(ctx context.Context, userID int) ([]models.Lesson, error) {
	return []models.Lesson{}, nil
}

func TestCommentService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.CreateCommentRequest
		targetErr     error
		expectedError error
		targetChecked bool
	}{
		{
			name: "success",
			req: &models.CreateCommentRequest{
				Content:    "Great passage",
				TargetType: models.TargetTypePassage,
				TargetID:   1,
				IsPublic:   true,
			},
			targetChecked: true,
		},
		{
			name: "missing content",
			req: &models.CreateCommentRequest{
				TargetType: models.TargetTypePassage,
				TargetID:   1,
			},
			expectedError: ErrInvalidInput,
		},
		{
			name: "unknown target type",
			req: &models.CreateCommentRequest{
				Content:    "hi",
				TargetType: "video",
				TargetID:   1,
			},
			expectedError: ErrInvalidInput,
		},
		{
			name: "missing target",
			req: &models.CreateCommentRequest{
				Content:    "hi",
				TargetType: models.TargetTypeWriting,
				TargetID:   9,
			},
			targetErr:     notFound("Target"),
			expectedError: ErrNotFound,
			targetChecked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCommentRepository{comments: map[int]*models.Comment{}}
			targets := &mockTargetChecker{err: tt.targetErr}
			svc := NewCommentService(repo, targets, newMockUserRepository(), zap.NewNop())

			comment, err := svc.Create(context.Background(), 1, tt.req)

			assert.Equal(t, tt.targetChecked, targets.called)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, repo.comments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, comment.ID)
			assert.Equal(t, 1, comment.UserID)
			assert.False(t, comment.CreatedAt.IsZero())
		})
	}
}

func TestCommentService_Delete(t *testing.T) {
	users := newMockUserRepository(
		&models.User{ID: 1, Username: "author"},
		&models.User{ID: 2, Username: "other"},
		&models.User{ID: 3, Username: "admin", IsAdmin: true},
	)

	tests := []struct {
		name          string
		userID        int
		commentID     int
		expectedError error
	}{
		{name: "author deletes", userID: 1, commentID: 1},
		{name: "admin deletes", userID: 3, commentID: 1},
		{name: "other user is forbidden", userID: 2, commentID: 1, expectedError: ErrForbidden},
		{name: "missing comment", userID: 1, commentID: 5, expectedError: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCommentRepository{comments: map[int]*models.Comment{
				1: {ID: 1, UserID: 1, Content: "c"},
				2: {ID: 2, UserID: 1, Content: "d"},
			}}
			svc := NewCommentService(repo, &mockTargetChecker{}, users, zap.NewNop())

			err := svc.Delete(context.Background(), tt.userID, tt.commentID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, repo.deleted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []int{tt.commentID}, repo.deleted)
			assert.Len(t, repo.comments, 1)
		})
	}
}

func TestCommentService_ListByTarget(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, &mockTargetChecker{}, newMockUserRepository(), zap.NewNop())

	comments, err := svc.ListByTarget(context.Background(), 1, "passage", 1)
	require.NoError(t, err)
	assert.NotNil(t, comments)

	_, err = svc.ListByTarget(context.Background(), 1, "video", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMoodService_List(t *testing.T) {
	tests := []struct {
		name          string
		limitParam    string
		expectedLimit int
		expectedError bool
	}{
		{name: "default limit", limitParam: "", expectedLimit: models.DefaultMoodLimit},
		{name: "explicit limit", limitParam: "7", expectedLimit: 7},
		{name: "not a number", limitParam: "abc", expectedError: true},
		{name: "zero", limitParam: "0", expectedError: true},
		{name: "negative", limitParam: "-3", expectedError: true},
		{name: "too large", limitParam: "100000", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockMoodRepository{}
			svc := NewMoodService(repo, zap.NewNop())

			_, err := svc.List(context.Background(), 1, tt.limitParam)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLimit, repo.limit)
		})
	}
}

func TestMoodService_Create(t *testing.T) {
	svc := NewMoodService(&mockMoodRepository{}, zap.NewNop())

	mood, err := svc.Create(context.Background(), 4, &models.CreateMoodRequest{Mood: models.MoodNeutral, Note: strPtr("ready")})
	require.NoError(t, err)
	assert.Equal(t, 4, mood.UserID)
	assert.False(t, mood.Timestamp.IsZero())

	_, err = svc.Create(context.Background(), 4, &models.CreateMoodRequest{Mood: "sleepy"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLessonService_Get(t *testing.T) {
	repo := &mockLessonRepository{lessons: map[int]*models.Lesson{}}
	svc := NewLessonService(repo, zap.NewNop())
	ctx := context.Background()

	lesson, err := svc.Create(ctx, 1, &models.CreateLessonRequest{
		Title:         "Lecture",
		Transcription: "text",
		Questions: models.Questions{
			{Text: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3},
		},
	})
	require.NoError(t, err)

	found, err := svc.Get(ctx, 1, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lecture", found.Title)

	_, err = svc.Get(ctx, 2, lesson.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMediaService(t *testing.T) {
	svc := NewMediaService(media.NewLocalStorage(t.TempDir()), zap.NewNop())
	ctx := context.Background()

	url, err := svc.UploadAudio(ctx, 1, bytes.NewReader([]byte("RIFF....WAVE")), "answer.wav")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, AudioURLPrefix))
	assert.True(t, strings.HasSuffix(url, ".wav"))

	f, err := svc.OpenAudio(ctx, strings.TrimPrefix(url, AudioURLPrefix))
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, "RIFF....WAVE", string(data))

	_, err = svc.UploadAudio(ctx, 1, strings.NewReader("x"), "virus.exe")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.OpenAudio(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.OpenAudio(ctx, "6f1c2b7e-8a44-4f5e-9d3c-0a1b2c3d4e5f.mp3")
	assert.ErrorIs(t, err, ErrNotFound)
}
