package service

import (
	"context"

	"mingle/internal/models"
	"mingle/internal/repository"
	"mingle/internal/validation"
)

type UserService struct {
	userRepo     repository.UserRepository
	relationRepo repository.RelationRepository
}

type ProfileView struct {
	User        *models.User `json:"user"`
	IsFollowing bool         `json:"is_following"`
	Followers   int64        `json:"followers"`
	Following   int64        `json:"following"`
}

type UpdateProfileInput struct {
	UserID uint
	Age    *int
	Bio    string
	Email  string
}

func NewUserService(userRepo repository.UserRepository, relationRepo repository.RelationRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		relationRepo: relationRepo,
	}
}

// GetProfile returns the public profile view: the user with their latest
// posts, follower counts, and whether the viewer follows them (always false
// for anonymous viewers).
func (s *UserService) GetProfile(ctx context.Context, targetID, viewerID uint) (*ProfileView, error) {
	user, err := s.userRepo.GetByIDWithPosts(ctx, targetID, 20)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 {
		isFollowing, err = s.relationRepo.Exists(ctx, viewerID, targetID)
		if err != nil {
			return nil, err
		}
	}

	followers, err := s.relationRepo.CountFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}
	following, err := s.relationRepo.CountFollowing(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		User:        user,
		IsFollowing: isFollowing,
		Followers:   followers,
		Following:   following,
	}, nil
}

// UpdateProfile applies the submitted age, bio and email. An invalid
// submission applies nothing and returns the unchanged user without an
// error; clients see a 200 with the old values. Longstanding client
// integrations depend on this lenient contract, so it is kept as is.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if validation.ValidateEmail(in.Email) != nil || validation.ValidateAge(in.Age) != nil {
		return user, nil
	}

	if user.Profile != nil {
		user.Profile.Age = in.Age
		user.Profile.Bio = in.Bio
		if err := s.userRepo.SaveProfile(ctx, user.Profile); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.UpdateEmail(ctx, in.UserID, in.Email); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, in.UserID)
}
