package service

import (
	"context"

	"romeo/internal/model"
	"romeo/internal/repository"
)

// MenuService exposes the restaurant menu.
type MenuService interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Replace(ctx context.Context, items []model.MenuItem) error
}

type menuService struct {
	menu repository.MenuRepository
}

// NewMenuService creates a new menu service.
func NewMenuService(menu repository.MenuRepository) MenuService {
	return &menuService{menu: menu}
}

func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	return s.menu.List(ctx)
}

func (s *menuService) Replace(ctx context.Context, items []model.MenuItem) error {
	return s.menu.Replace(ctx, items)
}
