package service

import (
	"context"
	"unicode/utf8"

	"mingle/internal/models"
	"mingle/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID uint
	PostID uint
	Body   string
}

type CreateReplyInput struct {
	UserID    uint
	PostID    uint
	CommentID uint
	Body      string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func validateCommentBody(body string) error {
	if body == "" {
		return models.NewValidationError("Body is required")
	}
	// the limit counts characters, not bytes
	if utf8.RuneCountInString(body) > models.MaxCommentLength {
		return models.NewValidationError("Comment too long (max 400 characters)")
	}
	return nil
}

// CreateComment attaches a top-level comment to the post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}
	if err := validateCommentBody(in.Body); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:   in.Body,
		UserID: in.UserID,
		PostID: in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// CreateReply attaches a reply to an existing comment on the post. Both the
// post and the parent comment are resolved by id; a parent belonging to a
// different post is rejected so reply chains stay within one post. Replying
// to a reply is allowed; only depth-1 threads are surfaced on post detail.
func (s *CommentService) CreateReply(ctx context.Context, in CreateReplyInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}
	parent, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if parent.PostID != in.PostID {
		return nil, models.NewValidationError("Comment does not belong to this post")
	}
	if err := validateCommentBody(in.Body); err != nil {
		return nil, err
	}

	reply := &models.Comment{
		Body:    in.Body,
		UserID:  in.UserID,
		PostID:  in.PostID,
		ReplyID: &parent.ID,
		IsReply: true,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, reply.ID)
}

// ListComments returns the post's top-level comments with replies nested
// one level deep.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListTopLevel(ctx, postID)
}
