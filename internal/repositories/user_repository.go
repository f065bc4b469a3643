package repositories

import (
	"context"
	"errors"

	"github.com/learnlife319/app/internal/models"
	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

// userRepository keeps users in users.json
type userRepository struct {
	users  *storage.Collection[models.User, *models.User]
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *storage.Store, logger *zap.Logger) *userRepository {
	return &userRepository{
		users:  storage.NewCollection[models.User](store, usersCollection, document(usersCollection)),
		logger: logger,
	}
}

// Create stores a new user. It returns ErrConflict if the username is already taken.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	created, err := r.users.CreateUnless(ctx, *user, func(existing *models.User) bool {
		return existing.Username == user.Username
	})
	if err != nil {
		return wrapError(r.logger, err, "failed to create user", zap.String("username", user.Username))
	}

	user.ID = created.ID
	return nil
}

// GetByID retrieves a user by id
func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get user", zap.Int("userID", id))
	}
	return user, nil
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := r.users.Find(ctx, func(u *models.User) bool {
		return u.Username == username
	})
	if err != nil {
		return nil, wrapError(r.logger, err, "failed to get user by username", zap.String("username", username))
	}
	return user, nil
}

// UpdateTelegramChannel sets the Telegram channel of the user
func (r *userRepository) UpdateTelegramChannel(ctx context.Context, id int, channelID string) error {
	_, err := r.users.Update(ctx, id, func(u *models.User) error {
		u.TelegramChannelID = &channelID
		return nil
	})
	if err != nil {
		return wrapError(r.logger, err, "failed to update telegram channel", zap.Int("userID", id))
	}
	return nil
}

// SetAdmin grants the admin flag to the user
func (r *userRepository) SetAdmin(ctx context.Context, id int) error {
	_, err := r.users.Update(ctx, id, func(u *models.User) error {
		u.IsAdmin = true
		return nil
	})
	if err != nil {
		return wrapError(r.logger, err, "failed to set admin flag", zap.Int("userID", id))
	}
	return nil
}

// Exists reports whether a user with the given id is stored
func (r *userRepository) Exists(ctx context.Context, id int) (bool, error) {
	_, err := r.users.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrapError(r.logger, err, "failed to check user", zap.Int("userID", id))
	}
	return true, nil
}

// IsAdmin reports whether the stored user has the admin flag. Unknown users are not admins.
func (r *userRepository) IsAdmin(ctx context.Context, id int) (bool, error) {
	user, err := r.users.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrapError(r.logger, err, "failed to check admin flag", zap.Int("userID", id))
	}
	return user.IsAdmin, nil
}
