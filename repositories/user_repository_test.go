package repositories_test

import (
	"strings"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *postgresSuite) TestUserCreateAndFind() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	email := gofakeit.Email()
	user, err := suite.users.Create(ctx, models.User{Email: email, Password: "hash"}, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)

	byEmail, err := suite.users.FindByEmail(ctx, strings.ToUpper(email))
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.Password)

	byID, err := suite.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, email, byID.Email)

	profile, err := suite.users.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, email, profile.Email)
	assert.False(t, profile.IsAdmin())
}

func (suite *postgresSuite) TestUserDuplicateEmail() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	email := gofakeit.Email()
	_, err := suite.users.Create(ctx, models.User{Email: email, Password: "hash"}, "A")
	require.NoError(t, err)

	_, err = suite.users.Create(ctx, models.User{Email: email, Password: "hash"}, "B")
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	var n int
	require.NoError(t, suite.pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_profiles`).Scan(&n))
	assert.Equal(t, 1, n)
}

func (suite *postgresSuite) TestUserProfileUpdate() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	user := suite.createUser()
	updated, err := suite.users.UpdateProfile(ctx, models.UserProfile{
		ID:         user.ID,
		FullName:   "Sam Carter",
		Phone:      "07700 900123",
		Address:    "1 High Street",
		City:       "Leeds",
		PostalCode: "LS1 1AA",
	})
	require.NoError(t, err)
	assert.Equal(t, "Leeds", updated.City)
	assert.Equal(t, user.Email, updated.Email)

	_, err = suite.users.UpdateProfile(ctx, models.UserProfile{ID: "missing"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func (suite *postgresSuite) TestUserPasswordAndRole() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	user := suite.createUser()
	require.NoError(t, suite.users.UpdatePassword(ctx, user.ID, "new-hash"))
	require.NoError(t, suite.users.SetRole(ctx, user.ID, models.RoleAdmin))

	got, err := suite.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.Password)
	assert.Equal(t, models.RoleAdmin, got.Role)

	assert.ErrorIs(t, suite.users.UpdatePassword(ctx, "missing", "x"), repositories.ErrNotFound)
	_, err = suite.users.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
