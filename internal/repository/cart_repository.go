package repository

import (
	"context"

	"romeo/internal/model"
	"romeo/internal/store"
)

// CartRepository persists the shopping cart.
type CartRepository interface {
	Load(ctx context.Context) ([]model.CartItem, error)
	Save(ctx context.Context, items []model.CartItem) error
}

type cartRepository struct {
	store store.Store
}

// NewCartRepository builds a store-backed cart repository.
func NewCartRepository(s store.Store) CartRepository {
	return &cartRepository{store: s}
}

func (r *cartRepository) Load(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	store.GetJSON(ctx, r.store, keyCart, &items)
	return items, nil
}

// Save persists the cart; an empty cart clears the record instead of storing
// an empty list.
func (r *cartRepository) Save(ctx context.Context, items []model.CartItem) error {
	if len(items) == 0 {
		return r.store.Delete(ctx, keyCart)
	}
	return store.SetJSON(ctx, r.store, keyCart, items)
}
