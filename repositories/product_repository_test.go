package repositories_test

import (
	"time"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *postgresSuite) TestProductCreateAndGet() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	want := randomProduct()
	want.Price = decimal.RequireFromString("1299.99")

	created, err := suite.products.Create(ctx, want)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	got, err := suite.products.GetByID(ctx, created.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(created, got, decimalComparer, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
		t.Errorf("product mismatch (-want +got):\n%s", diff)
	}
}

func (suite *postgresSuite) TestProductGetMissing() {
	_, err := suite.products.GetByID(suite.T().Context(), "missing")
	suite.ErrorIs(err, repositories.ErrNotFound)
}

func (suite *postgresSuite) TestProductListNewestFirst() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	var ids []string
	for i := 0; i < 3; i++ {
		p, err := suite.products.Create(ctx, randomProduct())
		require.NoError(t, err)
		ids = append([]string{p.ID}, ids...)
		time.Sleep(5 * time.Millisecond)
	}

	list, err := suite.products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, ids[i], p.ID)
	}
}

func (suite *postgresSuite) TestProductFeatured() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	featured := randomProduct()
	featured.Featured = true
	f, err := suite.products.Create(ctx, featured)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := suite.products.Create(ctx, randomProduct())
		require.NoError(t, err)
	}

	list, err := suite.products.Featured(ctx, 4)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, f.ID, list[0].ID)
}

func (suite *postgresSuite) TestProductUpdateAndDelete() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	p, err := suite.products.Create(ctx, randomProduct())
	require.NoError(t, err)

	p.Name = "Chesterfield"
	p.Price = decimal.RequireFromString("850.50")
	p.Category = models.CategorySofas
	require.NoError(t, suite.products.Update(ctx, p))

	got, err := suite.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chesterfield", got.Name)
	assert.True(t, decimal.RequireFromString("850.50").Equal(got.Price))

	require.NoError(t, suite.products.Delete(ctx, p.ID))
	assert.ErrorIs(t, suite.products.Delete(ctx, p.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, suite.products.Update(ctx, p), repositories.ErrNotFound)
}
