package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/telegram"
	"go.uber.org/zap"
)

// PassageRepository is the interface that wraps methods for passages collection access
type PassageRepository interface {
	Create(ctx context.Context, passage *models.Passage) error
	GetByID(ctx context.Context, id int) (*models.Passage, error)
	ListVisible(ctx context.Context, userID int) ([]models.Passage, error)
	ListByFolder(ctx context.Context, folderID, userID int) ([]models.Passage, error)
	UpdateReactions(ctx context.Context, id int, reactions models.Reactions) (*models.Passage, error)
}

// UserGetter retrieves a user by ID
type UserGetter interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// MessageSender delivers a text message to a chat
type MessageSender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type passageService struct {
	repo    PassageRepository
	folders FolderGetter
	users   UserGetter
	sender  MessageSender
	logger  *zap.Logger
}

// NewPassageService creates a new passage service
func NewPassageService(repo PassageRepository, folders FolderGetter, users UserGetter, sender MessageSender, logger *zap.Logger) *passageService {
	return &passageService{
		repo:    repo,
		folders: folders,
		users:   users,
		sender:  sender,
		logger:  logger,
	}
}

// Create creates a passage owned by the user
func (s *passageService) Create(ctx context.Context, userID int, req *models.CreatePassageRequest) (*models.Passage, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkFolder(ctx, s.folders, req.FolderID, userID, models.FolderTypePassage); err != nil {
		return nil, err
	}

	passage := &models.Passage{
		Title:     req.Title,
		Content:   req.Content,
		UserID:    userID,
		FolderID:  req.FolderID,
		Reactions: models.NewReactions(),
		IsPublic:  req.IsPublic,
	}
	if err := s.repo.Create(ctx, passage); err != nil {
		return nil, err
	}

	return passage, nil
}

// List returns the passages owned by the user and every public passage
func (s *passageService) List(ctx context.Context, userID int) ([]models.Passage, error) {
	return s.repo.ListVisible(ctx, userID)
}

// ListByFolder returns the passages of the folder visible to the user
func (s *passageService) ListByFolder(ctx context.Context, userID, folderID int) ([]models.Passage, error) {
	return s.repo.ListByFolder(ctx, folderID, userID)
}

// UpdateReactions replaces the reaction map of a passage visible to the user
func (s *passageService) UpdateReactions(ctx context.Context, userID, id int, reactions models.Reactions) (*models.Passage, error) {
	if !reactions.Valid() {
		return nil, ErrNegativeReaction
	}
	if _, err := s.visiblePassage(ctx, userID, id); err != nil {
		return nil, err
	}

	passage, err := s.repo.UpdateReactions(ctx, id, normalizeReactions(reactions))
	if err != nil {
		return nil, translateNotFound(err, "Passage")
	}
	return passage, nil
}

// Share posts the passage to the Telegram channel configured by the user
func (s *passageService) Share(ctx context.Context, userID, id int) error {
	passage, err := s.visiblePassage(ctx, userID, id)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return translateNotFound(err, "User")
	}
	if user.TelegramChannelID == nil || *user.TelegramChannelID == "" {
		return ErrNoTelegramChannel
	}

	message := telegram.FormatPassage(passage.Title, passage.Content)
	if err := s.sender.SendMessage(ctx, *user.TelegramChannelID, message); err != nil {
		s.logger.Error("failed to share passage to telegram",
			zap.Int("passageID", id),
			zap.Int("userID", userID),
			zap.Error(err),
		)
		return ErrTelegramShareFailed
	}

	s.logger.Info("passage shared to telegram", zap.Int("passageID", id), zap.Int("userID", userID))
	return nil
}

func (s *passageService) visiblePassage(ctx context.Context, userID, id int) (*models.Passage, error) {
	passage, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Passage")
	}
	if !passage.VisibleTo(userID) {
		return nil, notFound("Passage")
	}
	return passage, nil
}

// normalizeReactions makes sure a stored reaction map is never null
func normalizeReactions(reactions models.Reactions) models.Reactions {
	if reactions == nil {
		return models.NewReactions()
	}
	return reactions
}
