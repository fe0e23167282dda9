package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"romeo/internal/model"
	"romeo/internal/store"
)

// RememberTokenExpiry is how long a remember-me token keeps a session
// restorable.
const RememberTokenExpiry = 7 * 24 * time.Hour

const rememberKeyPrefix = "remember_"

// ErrRememberTokenInvalid is returned for unknown or expired remember tokens.
var ErrRememberTokenInvalid = errors.New("invalid or expired remember token")

// RememberRecord is the persisted payload of a remember-me token. The store
// has no TTL semantics, so expiry travels with the record and is checked on
// read.
type RememberRecord struct {
	Session   model.Session `json:"session"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// RememberStoreInterface defines remember-token storage operations.
type RememberStoreInterface interface {
	Issue(ctx context.Context, session model.Session) (string, error)
	Lookup(ctx context.Context, token string) (*model.Session, error)
	Revoke(ctx context.Context, token string) error
}

// RememberStore keeps remember-me tokens in the key-value store.
type RememberStore struct {
	store store.Store
}

var _ RememberStoreInterface = (*RememberStore)(nil)

// NewRememberStore creates a new remember-token store.
func NewRememberStore(s store.Store) *RememberStore {
	return &RememberStore{store: s}
}

// Issue mints a token that can restore the given session until it expires.
func (s *RememberStore) Issue(ctx context.Context, session model.Session) (string, error) {
	token := uuid.New().String()
	record := RememberRecord{
		Session:   session,
		ExpiresAt: time.Now().Add(RememberTokenExpiry),
	}
	if err := store.SetJSON(ctx, s.store, rememberKeyPrefix+token, record); err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token to its session. Expired tokens are removed.
func (s *RememberStore) Lookup(ctx context.Context, token string) (*model.Session, error) {
	var record RememberRecord
	if !store.GetJSON(ctx, s.store, rememberKeyPrefix+token, &record) {
		return nil, ErrRememberTokenInvalid
	}
	if time.Now().After(record.ExpiresAt) {
		_ = s.store.Delete(ctx, rememberKeyPrefix+token)
		return nil, ErrRememberTokenInvalid
	}
	return &record.Session, nil
}

// Revoke removes a token.
func (s *RememberStore) Revoke(ctx context.Context, token string) error {
	return s.store.Delete(ctx, rememberKeyPrefix+token)
}
