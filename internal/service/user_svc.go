package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/repository"
)

var (
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrNoPassword    = errors.New("account has no password")
)

type UserService struct {
	repo *repository.UserRepo
}

func NewUserService(repo *repository.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Profile returns the profile view of a user.
func (s *UserService) Profile(ctx context.Context, userID int64) (*model.ProfileResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profileResponse(u), nil
}

// UpdateProfile overwrites the submitted fields and returns the new profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd model.ProfileUpdateRequest) (*model.ProfileResponse, error) {
	u, err := s.repo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	return profileResponse(u), nil
}

// UpdatePassword verifies the current password before storing the new
// hash. Accounts provisioned without a password cannot change one.
func (s *UserService) UpdatePassword(ctx context.Context, userID int64, current, next string) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.PasswordHash == nil {
		return ErrNoPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(current)) != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, userID, string(hashed))
}

func profileResponse(u *model.User) *model.ProfileResponse {
	return &model.ProfileResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		Bio:          u.Bio,
		Location:     u.Location,
		ProfileImage: u.ProfileImage,
	}
}
