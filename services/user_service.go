package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"furniture-shop/models"
	"furniture-shop/repositories"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	p, err := s.users.GetProfile(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.UserProfile{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("users.GetProfile: %w", err)
	}
	return p, nil
}

// UpdateProfile replaces the saved shipping details. Blank fields are
// stored blank; a phone number, when given, must look like one.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.UserProfile, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone != "" {
		if err := validate.Var(phone, "phone"); err != nil {
			return models.UserProfile{}, fieldError("phone", "must be a valid phone number")
		}
	}

	p, err := s.users.UpdateProfile(ctx, models.UserProfile{
		ID:         userID,
		FullName:   strings.TrimSpace(req.FullName),
		Phone:      phone,
		Address:    strings.TrimSpace(req.Address),
		City:       strings.TrimSpace(req.City),
		PostalCode: strings.TrimSpace(req.PostalCode),
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return models.UserProfile{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("users.UpdateProfile: %w", err)
	}
	return p, nil
}

// IsAdmin reads the role from the stored profile, never from the token.
func (s *UserService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return false, err
	}
	return p.IsAdmin(), nil
}
