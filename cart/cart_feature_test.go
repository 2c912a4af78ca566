package cart_test

import (
	"context"
	"fmt"
	"testing"

	"furniture-shop/cart"
	"furniture-shop/models"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	ledger *cart.Ledger
}

func (c *cartTestContext) anEmptyCart() error {
	c.ledger = cart.New()
	return nil
}

func (c *cartTestContext) iAddOfProductPriced(quantity int, productID, price string) error {
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.ledger.Add(models.Product{ID: productID, Name: productID, Price: amount}, quantity)
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfTo(productID string, quantity int) error {
	c.ledger.UpdateQuantity(productID, quantity)
	return nil
}

func (c *cartTestContext) iRemove(productID string) error {
	c.ledger.Remove(productID)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.ledger.Clear()
	return nil
}

func (c *cartTestContext) theCartCountIs(want int) error {
	if got := c.ledger.Count(); got != want {
		return fmt.Errorf("expected count %d, got %d", want, got)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(want string) error {
	expected, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if got := c.ledger.Total(); !got.Equal(expected) {
		return fmt.Errorf("expected total %s, got %s", expected, got)
	}
	return nil
}

func (c *cartTestContext) theCartHasLines(want int) error {
	if got := c.ledger.Len(); got != want {
		return fmt.Errorf("expected %d lines, got %d", want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.ledger = nil
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	ctx.Step(`^I add (-?\d+) of product "([^"]*)" priced ([\d.]+)$`, tc.iAddOfProductPriced)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfTo)
	ctx.Step(`^I remove "([^"]*)"$`, tc.iRemove)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	ctx.Step(`^the cart count is (\d+)$`, tc.theCartCountIs)
	ctx.Step(`^the cart total is ([\d.]+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
