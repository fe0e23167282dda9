package repository

import (
	"context"

	"romeo/internal/model"
	"romeo/internal/store"
)

// AddressRepository persists per-user address books.
type AddressRepository interface {
	List(ctx context.Context, userID string) ([]model.Address, error)
	Save(ctx context.Context, userID string, addresses []model.Address) error
}

type addressRepository struct {
	store store.Store
}

// NewAddressRepository builds a store-backed address repository.
func NewAddressRepository(s store.Store) AddressRepository {
	return &addressRepository{store: s}
}

func (r *addressRepository) List(ctx context.Context, userID string) ([]model.Address, error) {
	var addresses []model.Address
	store.GetJSON(ctx, r.store, userKey(userID, "addresses"), &addresses)
	return addresses, nil
}

func (r *addressRepository) Save(ctx context.Context, userID string, addresses []model.Address) error {
	if len(addresses) == 0 {
		return r.store.Delete(ctx, userKey(userID, "addresses"))
	}
	return store.SetJSON(ctx, r.store, userKey(userID, "addresses"), addresses)
}
