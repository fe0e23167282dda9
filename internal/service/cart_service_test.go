package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "romeo/internal/errors"
	"romeo/internal/repository"
	"romeo/internal/store"
)

func newCartFixture() (CartService, store.Store) {
	st := store.NewMemory()
	return NewCartService(repository.NewCartRepository(st)), st
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		itemName      string
		quantity      int
		expectedError error
	}{
		{name: "valid add", itemName: "Pizza", quantity: 2},
		{name: "zero quantity", itemName: "Pizza", quantity: 0, expectedError: apperrors.ErrInvalidQuantity},
		{name: "negative quantity", itemName: "Pizza", quantity: -3, expectedError: apperrors.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCartFixture()
			items, err := svc.AddItem(ctx, tt.itemName, decimal.NewFromFloat(12.00), tt.quantity)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, items)
			} else {
				assert.NoError(t, err)
				assert.Len(t, items, 1)
				assert.Equal(t, tt.quantity, items[0].Quantity)
			}
		})
	}
}

func TestCartService_AddItem_MergesSameName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture()

	_, err := svc.AddItem(ctx, "Pizza", decimal.NewFromFloat(12.00), 2)
	assert.NoError(t, err)
	_, err = svc.AddItem(ctx, "Salad", decimal.NewFromFloat(6.50), 1)
	assert.NoError(t, err)
	items, err := svc.AddItem(ctx, "Pizza", decimal.NewFromFloat(12.00), 3)
	assert.NoError(t, err)

	// one line per name, quantities summed, insertion order preserved
	assert.Len(t, items, 2)
	assert.Equal(t, "Pizza", items[0].Name)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "Salad", items[1].Name)
}

func TestCartService_Total(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture()

	total, err := svc.Total(ctx)
	assert.NoError(t, err)
	assert.True(t, total.IsZero(), "empty cart total must be zero")

	_, _ = svc.AddItem(ctx, "Pizza", decimal.NewFromFloat(12.00), 2)
	_, _ = svc.AddItem(ctx, "Salad", decimal.NewFromFloat(6.50), 1)

	total, err = svc.Total(ctx)
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("30.50")), "got %s", total)

	count, err := svc.ItemCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCartService_Decrease(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture()

	_, _ = svc.AddItem(ctx, "Pizza", decimal.NewFromFloat(12.00), 2)
	_, _ = svc.AddItem(ctx, "Salad", decimal.NewFromFloat(6.50), 1)

	items, err := svc.Decrease(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)

	// decreasing a quantity-1 line removes it entirely
	items, err = svc.Decrease(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Pizza", items[0].Name)

	_, err = svc.Decrease(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
	_, err = svc.Increase(ctx, -1)
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture()

	_, _ = svc.AddItem(ctx, "Pizza", decimal.NewFromFloat(12.00), 2)

	items, err := svc.Remove(ctx, 0)
	assert.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.Remove(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
}

func TestCartService_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	svc, st := newCartFixture()

	_, _ = svc.AddItem(ctx, "Pizza", decimal.NewFromFloat(12.00), 1)

	// a fresh service over the same store sees the mutation
	again := NewCartService(repository.NewCartRepository(st))
	items, err := again.Items(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	// an emptied cart clears the persisted record, not stores an empty list
	_, _ = again.Remove(ctx, 0)
	raw, err := st.Get(ctx, "cart")
	assert.NoError(t, err)
	assert.Nil(t, raw)
}
