package services

import (
	"context"
	"time"

	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// CommentRepository is the interface that wraps methods for comments collection access
type CommentRepository interface {
	// Method Create stores a new comment and sets its ID.
	Create(ctx context.Context, comment *models.Comment) error
	// Method GetByID retrieves a comment by ID.
	//
	// If comment with such ID does not exist, repositories.ErrNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	// Method ListByTarget returns comments on the target visible to "userID", newest first.
	ListByTarget(ctx context.Context, targetType models.TargetType, targetID, userID int) ([]models.Comment, error)
	// Method Delete removes a comment.
	//
	// If comment with such ID does not exist, repositories.ErrNotFound is returned.
	Delete(ctx context.Context, id int) error
}

type commentService struct {
	repo    CommentRepository
	targets TargetChecker
	admins  AdminChecker
	logger  *zap.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo CommentRepository, targets TargetChecker, admins AdminChecker, logger *zap.Logger) *commentService {
	return &commentService{
		repo:    repo,
		targets: targets,
		admins:  admins,
		logger:  logger,
	}
}

// Create posts a comment on a target visible to the user
func (s *commentService) Create(ctx context.Context, userID int, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.targets.CheckVisible(ctx, req.TargetType, req.TargetID, userID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:     userID,
		Content:    req.Content,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		CreatedAt:  time.Now().UTC(),
		IsPublic:   req.IsPublic,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByTarget returns the comments on a target visible to the user, newest first
func (s *commentService) ListByTarget(ctx context.Context, userID int, targetType string, targetID int) ([]models.Comment, error) {
	t, err := parseTargetType(targetType)
	if err != nil {
		return nil, err
	}
	if err := s.targets.CheckVisible(ctx, t, targetID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByTarget(ctx, t, targetID, userID)
}

// Delete removes a comment. Only the author or an admin may delete it.
func (s *commentService) Delete(ctx context.Context, userID, id int) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err, "Comment")
	}

	if comment.UserID != userID {
		isAdmin, err := s.admins.IsAdmin(ctx, userID)
		if err != nil {
			return err
		}
		if !isAdmin {
			return ErrCommentDeleteDenied
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateNotFound(err, "Comment")
	}

	s.logger.Info("comment deleted", zap.Int("commentID", id), zap.Int("userID", userID))
	return nil
}
