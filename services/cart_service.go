package services

import (
	"context"
	"errors"
	"fmt"

	"furniture-shop/cart"
	"furniture-shop/models"
	"furniture-shop/repositories"
)

// CartService applies ledger operations to the cart stored for a session.
// Concurrent edits of one session are last-write-wins.
type CartService struct {
	carts    CartStore
	products ProductStore
}

func NewCartService(carts CartStore, products ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) load(ctx context.Context, sessionID string) (*cart.Ledger, error) {
	if sessionID == "" {
		return nil, ErrMissingCartSession
	}
	ledger, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("carts.Load: %w", err)
	}
	return ledger, nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(l *cart.Ledger)) (models.CartView, error) {
	ledger, err := s.load(ctx, sessionID)
	if err != nil {
		return models.CartView{}, err
	}

	fn(ledger)

	if err := s.carts.Save(ctx, sessionID, ledger); err != nil {
		return models.CartView{}, fmt.Errorf("carts.Save: %w", err)
	}
	return ledger.View(), nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (models.CartView, error) {
	ledger, err := s.load(ctx, sessionID)
	if err != nil {
		return models.CartView{}, err
	}
	return ledger.View(), nil
}

// Add snapshots the product as the catalog has it right now.
func (s *CartService) Add(ctx context.Context, sessionID, productID string, quantity int) (models.CartView, error) {
	product, err := s.products.GetByID(ctx, productID)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.CartView{}, ErrProductNotFound
	}
	if err != nil {
		return models.CartView{}, fmt.Errorf("products.GetByID: %w", err)
	}

	return s.mutate(ctx, sessionID, func(l *cart.Ledger) {
		l.Add(product, quantity)
	})
}

func (s *CartService) Remove(ctx context.Context, sessionID, productID string) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *cart.Ledger) {
		l.Remove(productID)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *cart.Ledger) {
		l.UpdateQuantity(productID, quantity)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (models.CartView, error) {
	if sessionID == "" {
		return models.CartView{}, ErrMissingCartSession
	}
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return models.CartView{}, fmt.Errorf("carts.Delete: %w", err)
	}
	return cart.New().View(), nil
}
