package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"romeo/internal/model"
	"romeo/internal/store"
)

func TestMenuRepository_ReplaceAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(store.NewMemory())

	items, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, items)

	menu := []model.MenuItem{
		{ID: "margherita", Name: "Margherita", Price: decimal.RequireFromString("11.50"), Category: "pizza"},
		{ID: "tiramisu", Name: "Tiramisu", Description: "House made", Price: decimal.RequireFromString("6.00"), Category: "dessert"},
	}
	assert.NoError(t, repo.Replace(ctx, menu))

	items, err = repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("11.50")))
	assert.Equal(t, "dessert", items[1].Category)

	// Replace swaps the whole menu, it never merges.
	assert.NoError(t, repo.Replace(ctx, menu[:1]))
	items, err = repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
