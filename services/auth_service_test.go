package services_test

import (
	"testing"
	"time"

	"furniture-shop/models"
	"furniture-shop/services"
	"furniture-shop/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	ctx := t.Context()
	users := newFakeUsers()
	svc := services.NewAuthService(users, "test-secret", time.Hour)

	email := gofakeit.Email()
	registered, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "  " + email + " ",
		Password: "hunter22",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", registered.User.FullName)
	assert.Equal(t, models.RoleCustomer, registered.User.Role)

	claims, err := utils.ValidateToken(registered.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	_, err = svc.Register(ctx, models.RegisterRequest{Email: email, Password: "another1", FullName: "Copy"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	loggedIn, err := svc.Login(ctx, models.LoginRequest{Email: email, Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(ctx, models.LoginRequest{Email: email, Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthChangePassword(t *testing.T) {
	ctx := t.Context()
	svc := services.NewAuthService(newFakeUsers(), "k", time.Hour)

	reg, err := svc.Register(ctx, models.RegisterRequest{Email: "sam@example.com", Password: "first-pass", FullName: "Sam"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, reg.User.ID, models.ChangePasswordRequest{OldPassword: "nope", NewPassword: "second-pass"})
	assert.ErrorIs(t, err, services.ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(ctx, reg.User.ID, models.ChangePasswordRequest{OldPassword: "first-pass", NewPassword: "second-pass"}))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "sam@example.com", Password: "second-pass"})
	assert.NoError(t, err)

	err = svc.ChangePassword(ctx, "ghost", models.ChangePasswordRequest{OldPassword: "a", NewPassword: "bbbbbb"})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserProfile(t *testing.T) {
	ctx := t.Context()
	users := newFakeUsers()
	users.put(models.UserProfile{ID: "u1", Email: "a@b.c", Role: models.RoleCustomer})
	users.put(models.UserProfile{ID: "admin", Email: "boss@b.c", Role: models.RoleAdmin})
	svc := services.NewUserService(users)

	updated, err := svc.UpdateProfile(ctx, "u1", models.UpdateProfileRequest{
		FullName: " Ann ",
		Phone:    "0113 496 0000",
		City:     "Leeds",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.FullName)
	assert.Equal(t, "Leeds", updated.City)

	_, err = svc.UpdateProfile(ctx, "u1", models.UpdateProfileRequest{Phone: "12"})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid phone number", verr.Fields["phone"])

	_, err = svc.GetProfile(ctx, "ghost")
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	isAdmin, err := svc.IsAdmin(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = svc.IsAdmin(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}
