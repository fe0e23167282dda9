package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/repository"
)

// CartService handles shopping cart operations. Every mutation persists the
// resulting cart before returning, so a later read always sees a consistent
// snapshot.
type CartService interface {
	Items(ctx context.Context) ([]model.CartItem, error)
	AddItem(ctx context.Context, name string, unitPrice decimal.Decimal, quantity int) ([]model.CartItem, error)
	Increase(ctx context.Context, index int) ([]model.CartItem, error)
	Decrease(ctx context.Context, index int) ([]model.CartItem, error)
	Remove(ctx context.Context, index int) ([]model.CartItem, error)
	Total(ctx context.Context) (decimal.Decimal, error)
	ItemCount(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

type cartService struct {
	cart repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(cart repository.CartRepository) CartService {
	return &cartService{cart: cart}
}

func (s *cartService) Items(ctx context.Context) ([]model.CartItem, error) {
	return s.cart.Load(ctx)
}

// AddItem merges into an existing same-name line or appends a new one,
// preserving insertion order.
func (s *cartService) AddItem(ctx context.Context, name string, unitPrice decimal.Decimal, quantity int) ([]model.CartItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("name", "item name is required")
	}
	if unitPrice.IsNegative() {
		return nil, apperrors.NewValidation("unit_price", "unit price must not be negative")
	}
	if quantity < 1 {
		return nil, apperrors.ErrInvalidQuantity
	}

	items, _ := s.cart.Load(ctx)
	merged := false
	for i := range items {
		if items[i].Name == name {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  quantity,
		})
	}

	if err := s.cart.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return items, nil
}

func (s *cartService) Increase(ctx context.Context, index int) ([]model.CartItem, error) {
	items, _ := s.cart.Load(ctx)
	if index < 0 || index >= len(items) {
		return nil, apperrors.ErrIndexOutOfRange
	}
	items[index].Quantity++
	if err := s.cart.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return items, nil
}

// Decrease lowers the quantity at index; at quantity 1 the line is removed
// rather than stored with a zero quantity.
func (s *cartService) Decrease(ctx context.Context, index int) ([]model.CartItem, error) {
	items, _ := s.cart.Load(ctx)
	if index < 0 || index >= len(items) {
		return nil, apperrors.ErrIndexOutOfRange
	}
	if items[index].Quantity > 1 {
		items[index].Quantity--
	} else {
		items = append(items[:index], items[index+1:]...)
	}
	if err := s.cart.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return items, nil
}

func (s *cartService) Remove(ctx context.Context, index int) ([]model.CartItem, error) {
	items, _ := s.cart.Load(ctx)
	if index < 0 || index >= len(items) {
		return nil, apperrors.ErrIndexOutOfRange
	}
	items = append(items[:index], items[index+1:]...)
	if err := s.cart.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return items, nil
}

// Total sums unit price times quantity over the cart; zero when empty.
func (s *cartService) Total(ctx context.Context) (decimal.Decimal, error) {
	items, _ := s.cart.Load(ctx)
	return cartTotal(items), nil
}

// ItemCount sums line quantities, feeding the cart badge.
func (s *cartService) ItemCount(ctx context.Context) (int, error) {
	items, _ := s.cart.Load(ctx)
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

func (s *cartService) Clear(ctx context.Context) error {
	return s.cart.Save(ctx, nil)
}

func cartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
