package repository

import (
	"context"

	"romeo/internal/model"
	"romeo/internal/store"
)

// OrderRepository persists per-user order history and favorites.
type OrderRepository interface {
	List(ctx context.Context, userID string) ([]model.Order, error)
	Append(ctx context.Context, userID string, order model.Order) error
	Favorites(ctx context.Context, userID string) ([]model.Order, error)
	SaveFavorites(ctx context.Context, userID string, favorites []model.Order) error
}

type orderRepository struct {
	store store.Store
}

// NewOrderRepository builds a store-backed order repository.
func NewOrderRepository(s store.Store) OrderRepository {
	return &orderRepository{store: s}
}

func (r *orderRepository) List(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	store.GetJSON(ctx, r.store, userKey(userID, "orders"), &orders)
	return orders, nil
}

// Append adds an order to the history. History is append-only; existing
// entries are never rewritten.
func (r *orderRepository) Append(ctx context.Context, userID string, order model.Order) error {
	orders, _ := r.List(ctx, userID)
	orders = append(orders, order)
	return store.SetJSON(ctx, r.store, userKey(userID, "orders"), orders)
}

func (r *orderRepository) Favorites(ctx context.Context, userID string) ([]model.Order, error) {
	var favorites []model.Order
	store.GetJSON(ctx, r.store, userKey(userID, "favorites"), &favorites)
	return favorites, nil
}

func (r *orderRepository) SaveFavorites(ctx context.Context, userID string, favorites []model.Order) error {
	if len(favorites) == 0 {
		return r.store.Delete(ctx, userKey(userID, "favorites"))
	}
	return store.SetJSON(ctx, r.store, userKey(userID, "favorites"), favorites)
}
