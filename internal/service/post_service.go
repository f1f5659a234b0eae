// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"
	"strings"

	"mingle/internal/models"
	"mingle/internal/repository"
	"mingle/internal/slug"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID uint
	Body   string
}

type UpdatePostInput struct {
	UserID uint
	PostID uint
	Body   string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Body is required")
	}

	post := &models.Post{
		Body:   in.Body,
		Slug:   slug.ForPost(in.Body),
		UserID: in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) ListPosts(ctx context.Context, search string, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, search, limit, offset, viewerID)
}

// GetDetail resolves a post for its canonical detail URL. Both the id and
// the slug must match; a stale slug is treated as not found.
func (s *PostService) GetDetail(ctx context.Context, postID uint, postSlug string, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByIDAndSlug(ctx, postID, postSlug, viewerID)
}

// UpdatePost recomputes the slug from the new body, so the detail URL of an
// edited post changes with it.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You cannot update this post")
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Body is required")
	}

	post.Body = in.Body
	post.Slug = slug.ForPost(in.Body)
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return models.NewUnauthorizedError("You cannot delete this post")
	}

	return s.postRepo.Delete(ctx, postID)
}

// LikePost records a vote unless one already exists. The existence check is
// application-level: two racing requests can both pass it, which mirrors the
// documented at-most-one-vote convention rather than a hard guarantee.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}

	voted, err := s.postRepo.HasVoted(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, models.NewConflictError("You already liked this post")
	}

	if err := s.postRepo.CreateVote(ctx, userID, postID); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}
