package repository

import (
	"context"

	"romeo/internal/model"
	"romeo/internal/store"
)

// SessionRepository persists the current session and the remember-me flag.
type SessionRepository interface {
	Current(ctx context.Context) (*model.Session, error)
	Save(ctx context.Context, session model.Session) error
	Clear(ctx context.Context) error
	SetRemember(ctx context.Context, remember bool) error
	Remembered(ctx context.Context) (bool, error)
}

type sessionRepository struct {
	store store.Store
}

// NewSessionRepository builds a store-backed session repository.
func NewSessionRepository(s store.Store) SessionRepository {
	return &sessionRepository{store: s}
}

// Current returns the stored session, or nil when nobody is logged in.
func (r *sessionRepository) Current(ctx context.Context) (*model.Session, error) {
	var session model.Session
	if !store.GetJSON(ctx, r.store, keyCurrentUser, &session) {
		return nil, nil
	}
	if session.ID == "" {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session model.Session) error {
	return store.SetJSON(ctx, r.store, keyCurrentUser, session)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, keyCurrentUser)
}

func (r *sessionRepository) SetRemember(ctx context.Context, remember bool) error {
	if !remember {
		return r.store.Delete(ctx, keyRememberMe)
	}
	return store.SetJSON(ctx, r.store, keyRememberMe, true)
}

func (r *sessionRepository) Remembered(ctx context.Context) (bool, error) {
	var remembered bool
	store.GetJSON(ctx, r.store, keyRememberMe, &remembered)
	return remembered, nil
}
