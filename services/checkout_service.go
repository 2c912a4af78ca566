package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"furniture-shop/models"

	"go.uber.org/zap"
)

const notifyTimeout = 30 * time.Second

// CheckoutService turns a session cart into a cash-on-delivery order.
type CheckoutService struct {
	carts    CartStore
	orders   OrderStore
	users    UserStore
	notifier OrderNotifier
	timeout  time.Duration
	logger   *zap.Logger

	wg  sync.WaitGroup
	now func() time.Time
}

// NewCheckoutService accepts a nil notifier, in which case no confirmation
// email is sent.
func NewCheckoutService(carts CartStore, orders OrderStore, users UserStore, notifier OrderNotifier, timeout time.Duration, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		orders:   orders,
		users:    users,
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit places the order. The cart is emptied only once the order write
// has been acknowledged; on any earlier failure it is left exactly as it was.
func (s *CheckoutService) Submit(ctx context.Context, identity *models.Identity, sessionID string, req models.CheckoutRequest) (models.Order, error) {
	if identity == nil || identity.UserID == "" {
		return models.Order{}, ErrUnauthenticated
	}

	details := s.shippingDetails(ctx, identity.UserID, req)
	if err := validateStruct(details); err != nil {
		return models.Order{}, err
	}

	if sessionID == "" {
		return models.Order{}, ErrEmptyCart
	}
	ledger, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to load cart for checkout", zap.String("user_id", identity.UserID), zap.Error(err))
		return models.Order{}, fmt.Errorf("%w: %w", ErrOrderNotPlaced, err)
	}
	if ledger.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		UserID:          identity.UserID,
		CustomerDetails: details,
		Items:           ledger.OrderItems(),
		TotalAmount:     ledger.Total(),
		Currency:        models.StoreCurrency.String(),
		PaymentMethod:   models.PaymentMethodCOD,
		Status:          models.OrderStatusPending,
		CreatedAt:       s.now(),
	}

	writeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	placed, err := s.orders.Create(writeCtx, order)
	if err != nil {
		s.logger.Error("failed to place order",
			zap.String("user_id", identity.UserID),
			zap.Int("items", len(order.Items)),
			zap.Error(err))
		return models.Order{}, fmt.Errorf("%w: %w", ErrOrderNotPlaced, err)
	}

	s.logger.Info("order placed",
		zap.String("order_id", placed.ID),
		zap.String("user_id", placed.UserID),
		zap.String("total", placed.TotalAmount.StringFixed(2)))

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("order placed but cart not cleared",
			zap.String("order_id", placed.ID), zap.Error(err))
	}

	s.notify(ctx, placed, identity.Email)
	return placed, nil
}

// shippingDetails fills blank form fields from the saved profile.
func (s *CheckoutService) shippingDetails(ctx context.Context, userID string, req models.CheckoutRequest) models.CustomerDetails {
	details := models.CustomerDetails{
		FullName:   strings.TrimSpace(req.FullName),
		Phone:      strings.TrimSpace(req.Phone),
		Address:    strings.TrimSpace(req.Address),
		City:       strings.TrimSpace(req.City),
		PostalCode: strings.TrimSpace(req.PostalCode),
	}
	if details.FullName != "" && details.Phone != "" && details.Address != "" &&
		details.City != "" && details.PostalCode != "" {
		return details
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Warn("could not prefill checkout from profile", zap.String("user_id", userID), zap.Error(err))
		return details
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = strings.TrimSpace(src)
		}
	}
	fill(&details.FullName, profile.FullName)
	fill(&details.Phone, profile.Phone)
	fill(&details.Address, profile.Address)
	fill(&details.City, profile.City)
	fill(&details.PostalCode, profile.PostalCode)
	return details
}

func (s *CheckoutService) notify(ctx context.Context, order models.Order, email string) {
	if s.notifier == nil || email == "" {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := s.notifier.OrderPlaced(notifyCtx, order, email); err != nil {
			s.logger.Warn("order confirmation not sent", zap.String("order_id", order.ID), zap.Error(err))
		}
	}()
}

// Wait blocks until pending confirmation emails have been attempted.
func (s *CheckoutService) Wait() {
	s.wg.Wait()
}
