package service

import (
	"context"

	"mingle/internal/models"
	"mingle/internal/repository"
)

type RelationService struct {
	relationRepo repository.RelationRepository
	userRepo     repository.UserRepository
}

func NewRelationService(relationRepo repository.RelationRepository, userRepo repository.UserRepository) *RelationService {
	return &RelationService{
		relationRepo: relationRepo,
		userRepo:     userRepo,
	}
}

// Follow creates the directed edge actor -> target. The duplicate check is
// application-level; concurrent duplicate requests can race (see DESIGN.md).
func (s *RelationService) Follow(ctx context.Context, actorID, targetID uint) error {
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	exists, err := s.relationRepo.Exists(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewConflictError("You are already following this user")
	}

	return s.relationRepo.Create(ctx, &models.Relation{
		FromUserID: actorID,
		ToUserID:   targetID,
	})
}

// Unfollow removes the edge actor -> target. Unfollowing someone you do not
// follow is reported as a conflict.
func (s *RelationService) Unfollow(ctx context.Context, actorID, targetID uint) error {
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	deleted, err := s.relationRepo.Delete(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewConflictError("You are not following this user")
	}
	return nil
}

// IsFollowing reports whether viewer follows target. Anonymous viewers
// (viewerID == 0) never follow anyone.
func (s *RelationService) IsFollowing(ctx context.Context, viewerID, targetID uint) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return s.relationRepo.Exists(ctx, viewerID, targetID)
}
