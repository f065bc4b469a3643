package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnlife319/app/internal/auth/service"
	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for users collection access
type UserRepository interface {
	// Method Create stores a new user and sets its ID.
	//
	// If the username is already taken, repositories.ErrConflict is returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, repositories.ErrNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.User, error)
	// Method GetByUsername retrieves a user by username.
	//
	// If user with such username does not exist, repositories.ErrNotFound is returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// authService implements registration, login and current user lookup
type authService struct {
	userRepo       UserRepository
	tokenGenerator *service.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *service.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Register creates a new user account and returns it together with an access token
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	if err := validateRequest(req); err != nil {
		return nil, "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: string(passwordHash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := s.tokenGenerator.GenerateAccessToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Int("userID", user.ID), zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("user registered", zap.Int("userID", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

// Login checks the credentials and returns the user together with an access token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if err := validateRequest(req); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrWrongCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrWrongCredentials
	}

	token, err := s.tokenGenerator.GenerateAccessToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Int("userID", user.ID), zap.Error(err))
		return nil, "", err
	}

	return user, token, nil
}

// GetUser returns the stored user
func (s *authService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err, "User")
	}
	return user, nil
}

// translateNotFound converts a repository ErrNotFound into a service not found error for entity
func translateNotFound(err error, entity string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(entity)
	}
	return err
}
