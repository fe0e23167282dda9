// Package store provides the key-value persistence layer. Values are JSON
// blobs; every backend fails safe, so unavailable storage reads as a miss and
// writes as a no-op. Callers must treat a missing or corrupt value as absent.
package store

import (
	"context"
	"encoding/json"
)

// Store is a namespace-agnostic JSON blob store.
type Store interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// GetJSON loads and unmarshals the value under key into out. It reports false
// when the key is absent or the stored value is not valid JSON.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) bool {
	data, err := s.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		// corrupt value reads as absent
		return false
	}
	return true
}

// SetJSON marshals v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}

type namespaced struct {
	inner  Store
	prefix string
}

// Namespaced wraps a store so that every key carries a fixed deployment
// prefix, e.g. "romeo:cart".
func Namespaced(inner Store, prefix string) Store {
	if prefix == "" {
		return inner
	}
	return &namespaced{inner: inner, prefix: prefix + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}
