package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/utils"
)

type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users UserStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) issue(ctx context.Context, user models.User) (models.LoginResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, string(user.Role), s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return models.LoginResponse{}, err
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("users.GetProfile: %w", err)
	}

	return models.LoginResponse{Token: token, User: profile}, nil
}

// Register always creates a customer. Admins are promoted in the database.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.LoginResponse{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		Email:    normalizeEmail(req.Email),
		Password: hashed,
		Role:     models.RoleCustomer,
	}, strings.TrimSpace(req.FullName))
	if errors.Is(err, repositories.ErrDuplicate) {
		return models.LoginResponse{}, ErrEmailTaken
	}
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("users.Create: %w", err)
	}

	return s.issue(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, repositories.ErrNotFound) {
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("users.FindByEmail: %w", err)
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("users.FindByID: %w", err)
	}

	if !utils.VerifyPassword(user.Password, req.OldPassword) {
		return ErrWrongPassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("users.UpdatePassword: %w", err)
	}
	return nil
}
