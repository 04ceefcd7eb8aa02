package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/repository"
	"github.com/Michelle21160775/yt-geo-project/pkg/jwt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const bcryptCost = 10

type AuthService struct {
	repo *repository.UserRepo
	jwt  *jwt.Manager
}

func NewAuthService(repo *repository.UserRepo, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{repo: repo, jwt: jwtManager}
}

// Register creates an account with a bcrypt-hashed password and returns a
// signed token for it.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hash := string(hashed)

	user, err := s.repo.Create(ctx, email, &hash, nil)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.respond(user)
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	// OAuth-provisioned accounts have no password hash.
	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

func (s *AuthService) respond(user *model.User) (*model.AuthResponse, error) {
	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &model.AuthResponse{
		Token: token,
		User:  model.AuthUser{ID: user.ID, Email: user.Email},
	}, nil
}
