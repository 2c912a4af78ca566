package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"go.uber.org/zap"
)

type OrderService struct {
	orders OrderStore
	logger *zap.Logger
}

func NewOrderService(orders OrderStore, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// History lists the caller's own orders, newest first.
func (s *OrderService) History(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("orders.ListByUser: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders.GetByID: %w", err)
	}
	return o, nil
}

// GetForUser hides other customers' orders behind ErrOrderNotFound.
func (s *OrderService) GetForUser(ctx context.Context, userID, id string) (models.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if o.UserID != userID {
		return models.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func parseStatus(raw string) (models.OrderStatus, error) {
	status := models.OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fieldError("status", "must be one of pending, processing, shipped, delivered")
	}
	return status, nil
}

// List is the admin view of every order. An empty or "All" status lists
// everything.
func (s *OrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	var filter models.OrderStatus
	if status != "" && !strings.EqualFold(status, models.FilterAll) {
		parsed, err := parseStatus(status)
		if err != nil {
			return nil, err
		}
		filter = parsed
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("orders.List: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances an order. The store re-checks the current status
// when writing so two admins cannot both move the same order.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	next, err := parseStatus(status)
	if err != nil {
		return models.Order{}, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if !current.Status.CanAdvanceTo(next) {
		return models.Order{}, ErrInvalidStatusTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, id, current.Status, next)
	if errors.Is(err, repositories.ErrConflict) {
		return models.Order{}, ErrStatusConflict
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders.UpdateStatus: %w", err)
	}

	s.logger.Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)))
	return updated, nil
}
