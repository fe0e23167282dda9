package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"romeo/internal/model"
)

// MockCartRepository is a mock implementation of repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Load(ctx context.Context) ([]model.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, items []model.CartItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Append(ctx context.Context, userID string, order model.Order) error {
	args := m.Called(ctx, userID, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Favorites(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) SaveFavorites(ctx context.Context, userID string, favorites []model.Order) error {
	args := m.Called(ctx, userID, favorites)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Current(ctx context.Context) (*model.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionRepository) SetRemember(ctx context.Context, remember bool) error {
	args := m.Called(ctx, remember)
	return args.Error(0)
}

func (m *MockSessionRepository) Remembered(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// MockAddressRepository is a mock implementation of repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) List(ctx context.Context, userID string) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Address), args.Error(1)
}

func (m *MockAddressRepository) Save(ctx context.Context, userID string, addresses []model.Address) error {
	args := m.Called(ctx, userID, addresses)
	return args.Error(0)
}

// The order append must hit the store before the cart clear does, so a crash
// between the two writes can only leave a recorded order and a stale cart.
func TestCheckoutService_CommitPersistsBeforeCartClear(t *testing.T) {
	ctx := context.Background()

	items := sampleItems()
	session := &model.Session{ID: testUserID, Name: "Test Customer", Email: "test@example.com"}
	addresses := []model.Address{sampleAddress()}

	var writes []string

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Current", mock.Anything).Return(session, nil)

	cartRepo := new(MockCartRepository)
	cartRepo.On("Load", mock.Anything).Return(items, nil)
	cartRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		writes = append(writes, "cart.Save")
	}).Return(nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Append", mock.Anything, testUserID, mock.AnythingOfType("model.Order")).Run(func(args mock.Arguments) {
		writes = append(writes, "orders.Append")
	}).Return(nil)

	addressRepo := new(MockAddressRepository)
	addressRepo.On("List", mock.Anything, testUserID).Return(addresses, nil)

	checkout := NewCheckoutService(
		sessionRepo,
		NewCartService(cartRepo),
		NewOrderService(orderRepo),
		NewAddressService(addressRepo),
	)

	order, err := checkout.PlaceOrder(ctx)
	assert.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("30.50")))

	assert.Equal(t, []string{"orders.Append", "cart.Save"}, writes)
	sessionRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	addressRepo.AssertExpectations(t)
}
