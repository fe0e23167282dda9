package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/repository"
)

// OrderService handles order history and favorites.
type OrderService interface {
	Commit(ctx context.Context, userID string, items []model.CartItem, total decimal.Decimal, address model.Address) (*model.Order, error)
	List(ctx context.Context, userID string) ([]model.Order, error)
	ToggleFavorite(ctx context.Context, userID string, index int) (bool, error)
	Favorites(ctx context.Context, userID string) ([]model.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// Commit stamps and appends a new order. The item list is copied so later
// cart mutations cannot reach into history.
func (s *orderService) Commit(ctx context.Context, userID string, items []model.CartItem, total decimal.Decimal, address model.Address) (*model.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	snapshot := make([]model.CartItem, len(items))
	copy(snapshot, items)

	order := model.Order{
		ID:      uuid.New().String(),
		Date:    time.Now(),
		Items:   snapshot,
		Total:   total,
		Address: address,
	}

	if err := s.orders.Append(ctx, userID, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return &order, nil
}

func (s *orderService) List(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orders.List(ctx, userID)
}

// ToggleFavorite flips favorite membership for the order at the given history
// index, keyed by the order's ID. Removal drops every match for that ID so a
// duplicated favorite cannot survive a toggle. Reports whether the order is a
// favorite afterwards.
func (s *orderService) ToggleFavorite(ctx context.Context, userID string, index int) (bool, error) {
	orders, _ := s.orders.List(ctx, userID)
	if index < 0 || index >= len(orders) {
		return false, apperrors.ErrIndexOutOfRange
	}
	order := orders[index]

	favorites, _ := s.orders.Favorites(ctx, userID)
	kept := favorites[:0]
	removed := false
	for _, fav := range favorites {
		if fav.ID == order.ID {
			removed = true
			continue
		}
		kept = append(kept, fav)
	}
	if !removed {
		kept = append(kept, order)
	}

	if err := s.orders.SaveFavorites(ctx, userID, kept); err != nil {
		return false, fmt.Errorf("persist favorites: %w", err)
	}
	return !removed, nil
}

func (s *orderService) Favorites(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orders.Favorites(ctx, userID)
}
