package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/repository"
	"romeo/internal/store"
)

const testUserID = "user-1"

func newOrderFixture() OrderService {
	return NewOrderService(repository.NewOrderRepository(store.NewMemory()))
}

func sampleItems() []model.CartItem {
	return []model.CartItem{
		{Name: "Pizza", UnitPrice: decimal.NewFromFloat(12.00), Quantity: 2},
		{Name: "Salad", UnitPrice: decimal.NewFromFloat(6.50), Quantity: 1},
	}
}

func sampleAddress() model.Address {
	return model.Address{Label: "Home", Street: "1 Main St", City: "Verona", State: "VR", Zip: "37100", IsDefault: true}
}

func TestOrderService_Commit(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture()

	order, err := svc.Commit(ctx, testUserID, sampleItems(), decimal.RequireFromString("30.50"), sampleAddress())
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.Date.IsZero())

	orders, err := svc.List(ctx, testUserID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("30.50")))

	// committing never rewrites history
	_, err = svc.Commit(ctx, testUserID, sampleItems(), decimal.RequireFromString("30.50"), sampleAddress())
	assert.NoError(t, err)
	orders, _ = svc.List(ctx, testUserID)
	assert.Len(t, orders, 2)
	assert.Equal(t, order.ID, orders[0].ID)

	_, err = svc.Commit(ctx, testUserID, nil, decimal.Zero, sampleAddress())
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestOrderService_Commit_SnapshotsItems(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture()

	items := sampleItems()
	_, err := svc.Commit(ctx, testUserID, items, decimal.RequireFromString("30.50"), sampleAddress())
	assert.NoError(t, err)

	// mutating the caller's slice must not reach the stored order
	items[0].Quantity = 99

	orders, _ := svc.List(ctx, testUserID)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestOrderService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture()

	_, err := svc.Commit(ctx, testUserID, sampleItems(), decimal.RequireFromString("30.50"), sampleAddress())
	assert.NoError(t, err)

	favorited, err := svc.ToggleFavorite(ctx, testUserID, 0)
	assert.NoError(t, err)
	assert.True(t, favorited)

	favorites, err := svc.Favorites(ctx, testUserID)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)

	// toggling twice is its own inverse
	favorited, err = svc.ToggleFavorite(ctx, testUserID, 0)
	assert.NoError(t, err)
	assert.False(t, favorited)

	favorites, err = svc.Favorites(ctx, testUserID)
	assert.NoError(t, err)
	assert.Empty(t, favorites)

	_, err = svc.ToggleFavorite(ctx, testUserID, 3)
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
}

func TestOrderService_ToggleFavorite_SameTotalOrders(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture()

	// two orders with identical totals stay distinguishable by id
	_, err := svc.Commit(ctx, testUserID, sampleItems(), decimal.RequireFromString("30.50"), sampleAddress())
	assert.NoError(t, err)
	_, err = svc.Commit(ctx, testUserID, sampleItems(), decimal.RequireFromString("30.50"), sampleAddress())
	assert.NoError(t, err)

	_, err = svc.ToggleFavorite(ctx, testUserID, 0)
	assert.NoError(t, err)
	_, err = svc.ToggleFavorite(ctx, testUserID, 1)
	assert.NoError(t, err)

	favorites, _ := svc.Favorites(ctx, testUserID)
	assert.Len(t, favorites, 2)

	// removing one leaves the other untouched
	_, err = svc.ToggleFavorite(ctx, testUserID, 0)
	assert.NoError(t, err)

	orders, _ := svc.List(ctx, testUserID)
	favorites, _ = svc.Favorites(ctx, testUserID)
	assert.Len(t, favorites, 1)
	assert.Equal(t, orders[1].ID, favorites[0].ID)
}
