package services

import (
	"context"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// UserSettingsRepository wraps user updates
type UserSettingsRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateTelegramChannel(ctx context.Context, id int, channelID string) error
	SetAdmin(ctx context.Context, id int) error
}

type userService struct {
	userRepo UserSettingsRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo UserSettingsRepository, logger *zap.Logger) *userService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// UpdateTelegramChannel stores the Telegram channel of the user
func (s *userService) UpdateTelegramChannel(ctx context.Context, userID int, req *models.UpdateTelegramChannelRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	if err := s.userRepo.UpdateTelegramChannel(ctx, userID, req.ChannelID); err != nil {
		return translateNotFound(err, "User")
	}
	return nil
}

// MakeAdmin grants admin rights to the user
func (s *userService) MakeAdmin(ctx context.Context, userID int) error {
	if err := s.userRepo.SetAdmin(ctx, userID); err != nil {
		return translateNotFound(err, "User")
	}

	s.logger.Info("admin rights granted", zap.Int("userID", userID))
	return nil
}

// GrantAdminByUsername grants admin rights to the user with the given username
func (s *userService) GrantAdminByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, translateNotFound(err, "User")
	}

	if err := s.MakeAdmin(ctx, user.ID); err != nil {
		return nil, err
	}

	user.IsAdmin = true
	return user, nil
}
