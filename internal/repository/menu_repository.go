package repository

import (
	"context"

	"romeo/internal/model"
	"romeo/internal/store"
)

// MenuRepository persists the restaurant menu.
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Replace(ctx context.Context, items []model.MenuItem) error
}

type menuRepository struct {
	store store.Store
}

// NewMenuRepository builds a store-backed menu repository.
func NewMenuRepository(s store.Store) MenuRepository {
	return &menuRepository{store: s}
}

func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	store.GetJSON(ctx, r.store, keyMenu, &items)
	return items, nil
}

func (r *menuRepository) Replace(ctx context.Context, items []model.MenuItem) error {
	return store.SetJSON(ctx, r.store, keyMenu, items)
}
