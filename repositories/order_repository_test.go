package repositories_test

import (
	"time"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomOrder(userID string) models.Order {
	items := []models.OrderItem{
		{
			ProductID:  gofakeit.UUID(),
			Name:       gofakeit.ProductName(),
			Price:      decimal.RequireFromString("250"),
			Quantity:   2,
			Category:   models.CategoryChairs,
			SeaterType: models.SeaterOne,
			ImageURL:   gofakeit.URL(),
		},
		{
			ProductID:  gofakeit.UUID(),
			Name:       gofakeit.ProductName(),
			Price:      decimal.RequireFromString("19.99"),
			Quantity:   1,
			Category:   models.CategoryBedSheets,
			SeaterType: models.SeaterNotApplicable,
		},
	}
	return models.Order{
		UserID: userID,
		CustomerDetails: models.CustomerDetails{
			FullName:   gofakeit.Name(),
			Phone:      "+44 20 7946 0958",
			Address:    gofakeit.Street(),
			City:       gofakeit.City(),
			PostalCode: "SW1A 1AA",
		},
		Items:         items,
		TotalAmount:   decimal.RequireFromString("519.99"),
		Currency:      "GBP",
		PaymentMethod: models.PaymentMethodCOD,
		Status:        models.OrderStatusPending,
	}
}

func (suite *postgresSuite) TestOrderCreateAndGet() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	user := suite.createUser()
	created, err := suite.orders.Create(ctx, randomOrder(user.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := suite.orders.GetByID(ctx, created.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(created, got, decimalComparer, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func (suite *postgresSuite) TestOrderGetMissing() {
	_, err := suite.orders.GetByID(suite.T().Context(), "missing")
	suite.ErrorIs(err, repositories.ErrNotFound)
}

func (suite *postgresSuite) TestOrderListings() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	alice := suite.createUser()
	bob := suite.createUser()

	first, err := suite.orders.Create(ctx, randomOrder(alice.ID))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := suite.orders.Create(ctx, randomOrder(alice.ID))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = suite.orders.Create(ctx, randomOrder(bob.ID))
	require.NoError(t, err)

	mine, err := suite.orders.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	_, err = suite.orders.UpdateStatus(ctx, first.ID, models.OrderStatusPending, models.OrderStatusShipped)
	require.NoError(t, err)

	all, err := suite.orders.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shipped, err := suite.orders.List(ctx, models.OrderStatusShipped)
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, first.ID, shipped[0].ID)
}

func (suite *postgresSuite) TestOrderUpdateStatusCompareAndSet() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	user := suite.createUser()
	order, err := suite.orders.Create(ctx, randomOrder(user.ID))
	require.NoError(t, err)

	updated, err := suite.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPending, models.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	// a second writer still believing the order is pending loses
	_, err = suite.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPending, models.OrderStatusShipped)
	assert.ErrorIs(t, err, repositories.ErrConflict)

	got, err := suite.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, got.Status)
}
