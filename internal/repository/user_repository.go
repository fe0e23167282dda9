package repository

import (
	"context"

	apperrors "romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/store"
)

// UserRepository persists the registered-users collection.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Append(ctx context.Context, user model.User) error
}

type userRepository struct {
	store store.Store
}

// NewUserRepository builds a store-backed user repository.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	store.GetJSON(ctx, r.store, keyUsers, &users)
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, _ := r.List(ctx)
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *userRepository) Append(ctx context.Context, user model.User) error {
	users, _ := r.List(ctx)
	users = append(users, user)
	return store.SetJSON(ctx, r.store, keyUsers, users)
}
