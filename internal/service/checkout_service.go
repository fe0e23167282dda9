package service

import (
	"context"
	"fmt"

	apperrors "romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/repository"
)

// CheckoutService orchestrates order placement.
type CheckoutService interface {
	PlaceOrder(ctx context.Context) (*model.Order, error)
}

type checkoutService struct {
	sessions  repository.SessionRepository
	cart      CartService
	orders    OrderService
	addresses AddressService
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	sessions repository.SessionRepository,
	cart CartService,
	orders OrderService,
	addresses AddressService,
) CheckoutService {
	return &checkoutService{
		sessions:  sessions,
		cart:      cart,
		orders:    orders,
		addresses: addresses,
	}
}

// PlaceOrder runs the checkout checks in order, short-circuiting on the first
// failure: session, then cart, then address. On success the order is
// committed to history before the cart is cleared, so a crash in between
// leaves a recorded order and a stale cart, never a lost order.
func (s *checkoutService) PlaceOrder(ctx context.Context) (*model.Order, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	address, err := s.addresses.Default(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve address: %w", err)
	}
	if address == nil {
		return nil, apperrors.ErrNoAddress
	}

	total := cartTotal(items)

	order, err := s.orders.Commit(ctx, session.ID, items, total, *address)
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		return order, fmt.Errorf("clear cart: %w", err)
	}
	return order, nil
}
